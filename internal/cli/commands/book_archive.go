package commands

import (
	"Enderbrary/internal/cli/api"
	"Enderbrary/internal/config"
	"context"
	"fmt"
	"net/http"
)

type bookArchiveCmd struct{}

func (bookArchiveCmd) Name() string        { return "book-archive" }
func (bookArchiveCmd) Description() string { return "Убрать книгу с полки (архивировать)" }
func (bookArchiveCmd) Usage() string       { return "book-archive <bookId>" }

func (bookArchiveCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	token, err := loadToken(cfg)
	if err != nil {
		return err
	}
	resp, body, err := api.PatchJSON(ctx, endpoint(cfg, "/api/v1/books/"+args[0]+"/archive"), nil, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp, body)
	}
	fmt.Fprintln(Out, "Book archived")
	return nil
}

func init() { RegisterCmd(bookArchiveCmd{}) }
