package commands

import (
	"Enderbrary/internal/cli/repo/fs"
	"Enderbrary/internal/config"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// borrowView — проекция заявки, как её отдаёт сервер.
type borrowView struct {
	ID           string    `json:"id"`
	BookID       string    `json:"book_id"`
	BookTitle    string    `json:"book_title"`
	LenderName   string    `json:"lender_name"`
	BorrowerName string    `json:"borrower_name"`
	RequestDate  time.Time `json:"request_date"`
	DueDate      time.Time `json:"due_date"`
	Status       string    `json:"status"`
}

// bookView — проекция книги, как её отдаёт сервер.
type bookView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	Available bool   `json:"available"`
	Archived  bool   `json:"archived"`
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func loadToken(cfg *config.Config) (string, error) {
	store := fs.TokenFSStore{Path: cfg.TokenFile}
	token, err := store.Load()
	if err != nil {
		return "", fmt.Errorf("no auth token, run 'token <jwt>' first: %w", err)
	}
	return token, nil
}

func endpoint(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

// serverError разбирает JSON-тело ошибки сервера в читаемое сообщение.
func serverError(resp *http.Response, body []byte) error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Message != "" {
		return fmt.Errorf("%s: %s", eb.Error, eb.Message)
	}
	return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}

func printBorrowView(v borrowView) {
	fmt.Fprintf(Out, "- %s  [%s]  %q  lender=%s  borrower=%s  due=%s\n",
		v.ID, v.Status, v.BookTitle, v.LenderName, v.BorrowerName, v.DueDate.Format("2006-01-02"))
}

func printBorrowList(items []borrowView) {
	if len(items) == 0 {
		fmt.Fprintln(Out, "Нет заявок")
		return
	}
	for _, v := range items {
		printBorrowView(v)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(items))
}
