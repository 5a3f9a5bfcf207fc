package model

import "time"

// BorrowStatus — состояние заявки на выдачу книги.
type BorrowStatus string

const (
	StatusPending         BorrowStatus = "PENDING"
	StatusApproved        BorrowStatus = "APPROVED"
	StatusRejected        BorrowStatus = "REJECTED"
	StatusReturnRequested BorrowStatus = "RETURN_REQUESTED"
	StatusReturned        BorrowStatus = "RETURNED"
)

// Terminal reports whether no further transition is defined for the status.
func (s BorrowStatus) Terminal() bool {
	return s == StatusRejected || s == StatusReturned
}

// Valid reports whether s is one of the known statuses.
func (s BorrowStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusReturnRequested, StatusReturned:
		return true
	}
	return false
}

// BorrowRequest — заявка одного пользователя на одну книгу.
// LenderID фиксируется в момент создания (владелец книги на тот момент);
// записи не удаляются, терминальные статусы остаются как история.
type BorrowRequest struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	BookID string `gorm:"not null;index;type:uuid"`

	Book *Book `gorm:"foreignKey:BookID"`

	BorrowerID string `gorm:"not null;index;type:uuid"`
	LenderID   string `gorm:"not null;index;type:uuid"`

	Borrower *User `gorm:"foreignKey:BorrowerID"`
	Lender   *User `gorm:"foreignKey:LenderID"`

	RequestedAt time.Time `gorm:"not null"`
	DueAt       time.Time `gorm:"not null"`

	Status BorrowStatus `gorm:"not null;index;type:varchar(24)"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
