package commands

import (
	"Enderbrary/internal/cli/api"
	"Enderbrary/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type booksCmd struct{}

func (booksCmd) Name() string        { return "books" }
func (booksCmd) Description() string { return "Показать мои книги (или архив: books archived)" }
func (booksCmd) Usage() string       { return "books [archived]" }

func (booksCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	path := "/api/v1/books/me"
	switch {
	case len(args) == 0:
	case len(args) == 1 && args[0] == "archived":
		path = "/api/v1/books/me/archived"
	default:
		return ErrUsage
	}

	token, err := loadToken(cfg)
	if err != nil {
		return err
	}
	resp, body, err := api.GetJSON(ctx, endpoint(cfg, path), token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp, body)
	}

	var books []bookView
	if err := json.Unmarshal(body, &books); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if len(books) == 0 {
		fmt.Fprintln(Out, "Нет книг")
		return nil
	}
	for _, b := range books {
		state := "available"
		if !b.Available {
			state = "on loan"
		}
		if b.Archived {
			state = "archived"
		}
		fmt.Fprintf(Out, "- %s  %q  %s  (%s)\n", b.ID, b.Title, b.Author, state)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(books))
	return nil
}

func init() { RegisterCmd(booksCmd{}) }
