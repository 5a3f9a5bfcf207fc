package service

import (
	"Enderbrary/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAct(t *testing.T) {
	req := &model.BorrowRequest{LenderID: "lender", BorrowerID: "borrower"}

	tests := []struct {
		name   string
		caller string
		op     borrowOp
		want   bool
	}{
		{"lender approves", "lender", opApprove, true},
		{"lender rejects", "lender", opReject, true},
		{"lender completes return", "lender", opCompleteReturn, true},
		{"borrower requests return", "borrower", opReturnBook, true},
		{"borrower cannot approve", "borrower", opApprove, false},
		{"borrower cannot reject", "borrower", opReject, false},
		{"borrower cannot complete return", "borrower", opCompleteReturn, false},
		{"lender cannot request return", "lender", opReturnBook, false},
		{"stranger cannot approve", "stranger", opApprove, false},
		{"stranger cannot request return", "stranger", opReturnBook, false},
		{"empty caller", "", opApprove, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canAct(req, tt.caller, tt.op))
		})
	}

	assert.False(t, canAct(nil, "lender", opApprove))
}
