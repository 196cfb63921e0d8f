package domain

const UserStorageKey = "current_user_info"

// UserInfo is the cached identity of the person using the client.
type UserInfo struct {
	UserID    string `json:"userId"`
	NickName  string `json:"nickName"`
	AvatarURL string `json:"avatarUrl"`
}

// Profile is what the host platform hands over at login.
type Profile struct {
	NickName  string
	AvatarURL string
}
