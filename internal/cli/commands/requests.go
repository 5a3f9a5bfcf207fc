package commands

import (
	"Enderbrary/internal/cli/api"
	"Enderbrary/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// listCmd covers the three read-only borrow listings, which differ only by endpoint.
type listCmd struct {
	name string
	desc string
	path string
}

func (c listCmd) Name() string        { return c.name }
func (c listCmd) Description() string { return c.desc }
func (c listCmd) Usage() string       { return c.name }

func (c listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	token, err := loadToken(cfg)
	if err != nil {
		return err
	}
	resp, body, err := api.GetJSON(ctx, endpoint(cfg, c.path), token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp, body)
	}

	var items []borrowView
	if err := json.Unmarshal(body, &items); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	printBorrowList(items)
	return nil
}

func init() {
	RegisterCmd(listCmd{"requests", "Мои заявки на чужие книги", "/api/v1/borrow/my-requests"})
	RegisterCmd(listCmd{"incoming", "Входящие заявки на мои книги", "/api/v1/borrow/incoming-requests"})
	RegisterCmd(listCmd{"lent", "Мои книги, выданные на руки", "/api/v1/borrow/lent"})
}
