package service

import (
	"Enderbrary/internal/model"
	"Enderbrary/internal/notify"
	"time"
)

// BorrowRequestView — проекция заявки для API-слоя.
type BorrowRequestView struct {
	ID            string    `json:"id"`
	BookID        string    `json:"book_id"`
	BookTitle     string    `json:"book_title"`
	LenderName    string    `json:"lender_name"`
	BorrowerName  string    `json:"borrower_name"`
	BorrowerEmail string    `json:"borrower_email"`
	RequestedAt   time.Time `json:"request_date"`
	DueAt         time.Time `json:"due_date"`
	Status        string    `json:"status"`
}

// BookView — проекция книги для API-слоя.
type BookView struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CoverURL    string    `json:"cover_url"`
	Available   bool      `json:"available"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"created_at"`
}

func toBorrowView(br *model.BorrowRequest) *BorrowRequestView {
	v := &BorrowRequestView{
		ID:          br.ID,
		BookID:      br.BookID,
		RequestedAt: br.RequestedAt,
		DueAt:       br.DueAt,
		Status:      string(br.Status),
	}
	if br.Book != nil {
		v.BookTitle = br.Book.Title
	}
	if br.Lender != nil {
		v.LenderName = br.Lender.Name
	}
	if br.Borrower != nil {
		v.BorrowerName = br.Borrower.Name
		v.BorrowerEmail = br.Borrower.Email
	}
	return v
}

func toBorrowViews(items []model.BorrowRequest) []BorrowRequestView {
	views := make([]BorrowRequestView, 0, len(items))
	for i := range items {
		views = append(views, *toBorrowView(&items[i]))
	}
	return views
}

func toBookView(b *model.Book) *BookView {
	return &BookView{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Category:    b.Category,
		CoverURL:    b.CoverURL,
		Available:   b.Available,
		Archived:    b.Archived,
		CreatedAt:   b.CreatedAt,
	}
}

func toBookViews(items []model.Book) []BookView {
	views := make([]BookView, 0, len(items))
	for i := range items {
		views = append(views, *toBookView(&items[i]))
	}
	return views
}

// eventFrom собирает payload уведомления из снимка заявки на момент перехода.
func eventFrom(kind notify.Kind, br *model.BorrowRequest) notify.Event {
	e := notify.Event{
		Kind:       kind,
		RequestID:  br.ID,
		OccurredAt: time.Now().UTC(),
	}
	if br.Book != nil {
		e.BookTitle = br.Book.Title
	}
	if br.Lender != nil {
		e.LenderName = br.Lender.Name
		e.LenderEmail = br.Lender.Email
	}
	if br.Borrower != nil {
		e.BorrowerName = br.Borrower.Name
		e.BorrowerEmail = br.Borrower.Email
	}
	return e
}
