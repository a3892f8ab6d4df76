package service

import (
	"fmt"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

// decimalEq сравнивает суммы по значению, без учета внутреннего представления.
type decimalEq struct {
	want decimal.Decimal
}

func eqDecimal(v int64) gomock.Matcher {
	return decimalEq{want: decimal.NewFromInt(v)}
}

func (m decimalEq) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalEq) String() string {
	return fmt.Sprintf("is decimal equal to %s", m.want)
}
