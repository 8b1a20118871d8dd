package models

// User adalah profil mahasiswa yang sedang login. Dibuat saat login,
// dibuang saat logout; tidak pernah diubah selama sesi berjalan.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	StudentID string `json:"studentId"`
	College   string `json:"college"`
	Dept      string `json:"department"`
	PhotoURL  string `json:"photoUrl,omitempty"`
}

// NewMockUser builds the fixed demo profile with the supplied student id
// substituted in. The identity provider is a stub: no real credential
// validation happens anywhere.
func NewMockUser(studentID string) *User {
	if studentID == "" {
		studentID = "STU102456"
	}
	return &User{
		ID:        "usr_123",
		Name:      "John Doe",
		Email:     "john.doe@university.edu",
		StudentID: studentID,
		College:   "Global Institute of Technology",
		Dept:      "Computer Science",
		PhotoURL:  "https://i.pravatar.cc/300?u=john",
	}
}
