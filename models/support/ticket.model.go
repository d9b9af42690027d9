package support

import "gorm.io/gorm"

// Ticket statuses
const (
	TicketOpen     = "OPEN"
	TicketAnswered = "ANSWERED"
	TicketClosed   = "CLOSED"
)

type Ticket struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Title     string `json:"title"`
	Message   string `json:"message" gorm:"type:text"`
	Status    string `json:"status" gorm:"default:'OPEN'"`
	Priority  string `json:"priority" gorm:"default:'MEDIUM'"`
	Category  string `json:"category" gorm:"default:'GENERAL'"`
	Reply     string `json:"reply" gorm:"type:text"`
	RepliedBy *uint  `json:"replied_by"`
	IsDeleted bool   `json:"is_deleted" gorm:"default:false"`
}
