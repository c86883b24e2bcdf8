package auth

// Users Table structure. A username may exist once per role: the login key
// is the (user_name, role) pair.
type Users struct {
	UserID   int    `json:"user_id" gorm:"primaryKey;autoIncrement;not null"`
	UserName string `json:"user_name" gorm:"uniqueIndex:idx_users_name_role;not null"`
	Password string `json:"-" gorm:"not null"`
	Role     string `json:"role" gorm:"uniqueIndex:idx_users_name_role;not null"`
}

func (Users) TableName() string {
	return "users"
}

// Session is the authenticated actor carried through a request: the three
// session keys and nothing else.
type Session struct {
	UserID   int    `json:"user_id"`
	UserName string `json:"user_name"`
	Role     string `json:"role"`
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
