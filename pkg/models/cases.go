package models

// CaseType identifies the moderation action recorded in a case
type CaseType string

const (
	CaseTypeWarn    CaseType = "warn"
	CaseTypeKick    CaseType = "kick"
	CaseTypeBan     CaseType = "ban"
	CaseTypeTimeout CaseType = "timeout"
)

// Case representa una acción de moderación registrada con id secuencial
// por servidor. El id secuencial viene del contador "cases:<guildId>".
type Case struct {
	CaseID    int      `bson:"caseId" json:"caseId"`
	GuildID   string   `bson:"guildId" json:"guildId"`
	Type      CaseType `bson:"type" json:"type"`
	UserID    string   `bson:"userId" json:"userId"`
	Moderator string   `bson:"moderator" json:"moderator"`
	Reason    string   `bson:"reason" json:"reason"`
	Duration  string   `bson:"duration,omitempty" json:"duration,omitempty"`
	Timestamp int64    `bson:"timestamp" json:"timestamp"`
}
