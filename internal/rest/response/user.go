package response

import "github.com/Guyuepp/go-realtime-comments/domain"

const DateTimeFormat = "2006-01-02 15:04:05"

type User struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Username  string  `json:"username"`
	CreatedAt string  `json:"created_at"`
	Followers []int64 `json:"followers,omitempty"`
	Following []int64 `json:"following,omitempty"`
}

// NewUserFromDomain: Domain -> Response
func NewUserFromDomain(u *domain.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		CreatedAt: u.CreatedAt.Format(DateTimeFormat),
		Followers: u.Followers,
		Following: u.Following,
	}
}

func NewUsersFromDomain(us []domain.User) []*User {
	res := make([]*User, 0, len(us))
	for i := range us {
		res = append(res, NewUserFromDomain(&us[i]))
	}
	return res
}
