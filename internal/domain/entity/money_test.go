package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		input   string
		want    Money
		wantErr bool
	}{
		{input: "3.50", want: 350},
		{input: "9.99", want: 999},
		{input: " 12 ", want: 1200},
		{input: "0.005", want: 1},
		{input: "0.004", want: 0},
		{input: "three", wantErr: true},
		{input: "92233720368547758.07", want: MaxMoney},
		{input: "92233720368547758.08", wantErr: true},
		{input: "184467440737095516.17", wantErr: true},
		{input: "-92233720368547758.09", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMoney(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Zero(t, got)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoney_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Price Money `json:"price"`
	}{Price: 1699})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":"16.99"}`, string(data))

	var decoded struct {
		Quoted Money `json:"quoted"`
		Bare   Money `json:"bare"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"quoted":"3.50","bare":9.99}`), &decoded))
	assert.Equal(t, Money(350), decoded.Quoted)
	assert.Equal(t, Money(999), decoded.Bare)
}

func TestStoreCart_TotalPrice(t *testing.T) {
	cart := NewStoreCart(1)
	cart.Lines = []CartLine{
		{ProductID: 1, Quantity: 2, UnitPrice: 350},
		{ProductID: 2, Quantity: 1, UnitPrice: 999},
	}

	assert.Equal(t, "16.99", cart.TotalPrice().String())
	assert.Equal(t, 3, cart.TotalProducts())
	assert.Equal(t, ShippingMethodDelivery, cart.ShippingMethod)
}

func TestMoney_UnmarshalJSON_RejectsOutOfRange(t *testing.T) {
	var price Money
	err := json.Unmarshal([]byte(`"184467440737095516.17"`), &price)

	require.ErrorIs(t, err, ErrMoneyOutOfRange)
	assert.Zero(t, price)
}

func TestMoney_ArithmeticClamps(t *testing.T) {
	tests := []struct {
		name string
		got  Money
		want Money
	}{
		{name: "mul", got: Money(350).Mul(3), want: 1050},
		{name: "mul by zero", got: MaxMoney.Mul(0), want: 0},
		{name: "mul overflow", got: Money(1 << 60).Mul(999), want: MaxMoney},
		{name: "mul negative overflow", got: Money(-(1 << 60)).Mul(999), want: MinMoney},
		{name: "mul min by minus one", got: MinMoney.Mul(-1), want: MaxMoney},
		{name: "add", got: Money(350).Add(999), want: 1349},
		{name: "add overflow", got: MaxMoney.Add(1), want: MaxMoney},
		{name: "add negative overflow", got: MinMoney.Add(-1), want: MinMoney},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestStoreCart_TotalPrice_Clamps(t *testing.T) {
	cart := NewStoreCart(1)
	cart.Lines = []CartLine{
		{ProductID: 1, Quantity: 999, UnitPrice: 1 << 60},
		{ProductID: 2, Quantity: 1, UnitPrice: 999},
	}

	assert.Equal(t, MaxMoney, cart.TotalPrice())
}
