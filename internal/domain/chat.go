package domain

// RecruiterID is the sender id of scripted replies.
const RecruiterID = "recruiter"

const ChatStorageKey = "chat_histories"

// ChatMessage is one entry of a simulated conversation. ChatID is the job id.
type ChatMessage struct {
	ID        int64  `json:"id"`
	ChatID    string `json:"chatId"`
	SenderID  string `json:"senderId"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

func (m ChatMessage) FromRecruiter() bool {
	return m.SenderID == RecruiterID
}
