package models

import (
	"github.com/mmdatafocus/smartpos_backend/utils"
	"github.com/shopspring/decimal"
)

type CurrencyCode string

const (
	CurrencyTZS CurrencyCode = "TZS"
	CurrencyUSD CurrencyCode = "USD"
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyGBP CurrencyCode = "GBP"
	CurrencyKES CurrencyCode = "KES"
)

type LanguageCode string

const (
	LanguageEnglish LanguageCode = "en"
	LanguageSwahili LanguageCode = "sw"
)

// Currency describes a display currency. Rate is units per US dollar.
type Currency struct {
	Code     CurrencyCode    `json:"code"`
	Name     string          `json:"name"`
	Symbol   string          `json:"symbol"`
	Rate     decimal.Decimal `json:"rate"`
	Decimals int32           `json:"decimals"`
}

var Currencies = map[CurrencyCode]Currency{
	CurrencyTZS: {Code: CurrencyTZS, Name: "Tanzanian Shilling", Symbol: "TSh", Rate: decimal.NewFromInt(2600), Decimals: 0},
	CurrencyUSD: {Code: CurrencyUSD, Name: "US Dollar", Symbol: "$", Rate: decimal.NewFromInt(1), Decimals: 2},
	CurrencyEUR: {Code: CurrencyEUR, Name: "Euro", Symbol: "€", Rate: decimal.RequireFromString("0.92"), Decimals: 2},
	CurrencyGBP: {Code: CurrencyGBP, Name: "British Pound", Symbol: "£", Rate: decimal.RequireFromString("0.79"), Decimals: 2},
	CurrencyKES: {Code: CurrencyKES, Name: "Kenyan Shilling", Symbol: "KSh", Rate: decimal.NewFromInt(130), Decimals: 0},
}

// Convert turns a US dollar amount into this currency, rounded to its decimals.
func (c Currency) Convert(usd decimal.Decimal) decimal.Decimal {
	return usd.Mul(c.Rate).Round(c.Decimals)
}

type AppSettings struct {
	Currency CurrencyCode `json:"currency"`
	Language LanguageCode `json:"language"`
}

func DefaultSettings() AppSettings {
	return AppSettings{Currency: CurrencyTZS, Language: LanguageEnglish}
}

func (s AppSettings) Validate() error {
	if _, ok := Currencies[s.Currency]; !ok {
		return utils.NewValidationError("Currency", "oneof")
	}
	if s.Language != LanguageEnglish && s.Language != LanguageSwahili {
		return utils.NewValidationError("Language", "oneof")
	}
	return nil
}
