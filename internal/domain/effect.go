package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SignedAmount возвращает изменение баланса, которое вносит запись вида kind на сумму amount.
// Зачисления (deposit, win, referral_bonus, refund) положительны, списания (withdrawal, bet) отрицательны.
// Для неизвестного вида возвращает ErrInvalidKind.
func SignedAmount(kind EntryKind, amount decimal.Decimal) (decimal.Decimal, error) {
	switch kind {
	case EntryKindDeposit, EntryKindWin, EntryKindReferralBonus, EntryKindRefund:
		return amount, nil
	case EntryKindWithdrawal, EntryKindBet:
		return amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("kind `%s`: %w", kind, ErrInvalidKind)
	}
}

// IsCorrectable сообщает, можно ли откатить завершенную запись этого вида через корректировку.
// Записи, порожденные ставками и расчетом матчей, не корректируются.
func (k EntryKind) IsCorrectable() bool {
	return k == EntryKindDeposit || k == EntryKindWithdrawal
}

// MoneyPlaces точность хранения сумм и коэффициентов.
const MoneyPlaces = 2

// maxPrice верхняя граница коэффициента, помещающаяся в столбец NUMERIC(6,2).
var maxPrice = decimal.New(1, 4) //nolint:mnd

// IsMoney сообщает, что d записывается без потери точности (не более MoneyPlaces знаков после запятой).
func IsMoney(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MoneyPlaces))
}

// IsValidPrice сообщает, что коэффициент больше нуля, укладывается в точность MoneyPlaces и меньше maxPrice.
func IsValidPrice(price decimal.Decimal) bool {
	return price.IsPositive() && IsMoney(price) && price.LessThan(maxPrice)
}
