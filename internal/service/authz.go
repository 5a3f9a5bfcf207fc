package service

import "Enderbrary/internal/model"

// borrowOp — операция над заявкой, требующая проверки роли.
type borrowOp int

const (
	opApprove borrowOp = iota
	opReject
	opReturnBook
	opCompleteReturn
)

// canAct — чистый предикат авторизации: держит ли caller роль, нужную для
// операции. Проверяется строго после загрузки заявки и до любых проверок
// статуса, чтобы легальность перехода и права не смешивались.
func canAct(req *model.BorrowRequest, callerID string, op borrowOp) bool {
	if req == nil || callerID == "" {
		return false
	}
	switch op {
	case opApprove, opReject, opCompleteReturn:
		return req.LenderID == callerID
	case opReturnBook:
		return req.BorrowerID == callerID
	default:
		return false
	}
}
