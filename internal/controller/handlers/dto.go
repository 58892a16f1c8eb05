package handlers

// RegisterDTO is the body of the register endpoints.
type RegisterDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginDTO is the body of the login endpoints.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateLessonDTO is the body of POST /lessons.
type CreateLessonDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AddProgressDTO is the body of POST /progress.
type AddProgressDTO struct {
	StudentID int `json:"studentId"`
	LessonID  int `json:"lessonId"`
}
