package commands

import (
	"Enderbrary/internal/cli/api"
	"Enderbrary/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type bookAddCmd struct{}

func (bookAddCmd) Name() string        { return "book-add" }
func (bookAddCmd) Description() string { return "Добавить книгу в мою библиотеку" }
func (bookAddCmd) Usage() string       { return "book-add <title> [author] [category]" }

func (bookAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 3 {
		return ErrUsage
	}
	payload := map[string]string{"title": args[0]}
	if len(args) > 1 {
		payload["author"] = args[1]
	}
	if len(args) > 2 {
		payload["category"] = args[2]
	}

	token, err := loadToken(cfg)
	if err != nil {
		return err
	}
	resp, body, err := api.PostJSON(ctx, endpoint(cfg, "/api/v1/books"), payload, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return serverError(resp, body)
	}

	var b bookView
	if err := json.Unmarshal(body, &b); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	fmt.Fprintf(Out, "Added %q (%s)\n", b.Title, b.ID)
	return nil
}

func init() { RegisterCmd(bookAddCmd{}) }
