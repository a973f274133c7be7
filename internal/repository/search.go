package repository

import (
	"context"
	"fmt"
	"strings"

	"auctionbase-web/internal/model"
)

// searchQuery assembles the conjunctive item filter. Every supplied
// value becomes a bound parameter; the query text only ever contains
// placeholders.
func searchQuery(f model.SearchFilter, now model.Timestamp) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`SELECT DISTINCT Items.* FROM Items`)
	if f.Category != "" {
		sb.WriteString(` INNER JOIN Categories ON Items.ItemID = Categories.ItemID`)
	}

	var conds []string
	var args []interface{}

	if f.ItemID != "" {
		conds = append(conds, `Items.ItemID = ?`)
		args = append(args, f.ItemID)
	}
	if f.Category != "" {
		conds = append(conds, `Categories.Category = ?`)
		args = append(args, f.Category)
	}
	if f.Description != "" {
		conds = append(conds, `Items.Description LIKE ?`)
		args = append(args, "%"+f.Description+"%")
	}

	switch f.Status {
	case model.StatusOpen:
		conds = append(conds, `Items.Started <= ? AND Items.Ends >= ? AND Items.Currently < Items.Buy_Price`)
		args = append(args, now, now)
	case model.StatusClosed:
		conds = append(conds, `Items.Ends <= ? OR Items.Currently = Items.Buy_Price`)
		args = append(args, now)
	case model.StatusNotStarted:
		conds = append(conds, `Items.Started > ?`)
		args = append(args, now)
	}

	if f.MinPrice != nil {
		conds = append(conds, `Items.Currently >= ?`)
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		conds = append(conds, `Items.Currently <= ?`)
		args = append(args, *f.MaxPrice)
	}

	if len(conds) > 0 {
		sb.WriteString(` WHERE (`)
		sb.WriteString(strings.Join(conds, `) AND (`))
		sb.WriteString(`)`)
	}

	return sb.String(), args
}

// SearchItems runs the assembled filter query. An empty filter
// returns every item; no matches is a nil slice.
func (s *SQLStore) SearchItems(ctx context.Context, f model.SearchFilter, now model.Timestamp) ([]model.Item, error) {
	query, args := searchQuery(f, now)

	var items []model.Item
	if err := s.db.SelectContext(ctx, &items, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("searching items: %w", err)
	}
	return items, nil
}
