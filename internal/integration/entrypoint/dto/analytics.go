// Package dto defines data transfer objects for API requests and responses.
//
// Field names follow the original EasyImob wire format, which the dashboard
// frontend consumes as-is.
package dto

import (
	"github.com/easyimob/backend/internal/application/usecase/analytics"
	"github.com/easyimob/backend/internal/domain/entity"
)

// RawPaymentResponse represents one row of the raw payments endpoint: the six
// join columns, with the date serialized as YYYY-MM-DD.
type RawPaymentResponse struct {
	SaleID              int     `json:"id_venda"`
	PaymentDate         string  `json:"data_do_pagamento"`
	Amount              float64 `json:"valor_do_pagamento"`
	PropertyCode        int     `json:"codigo_imovel"`
	PropertyDescription string  `json:"descricao_imovel"`
	PropertyType        string  `json:"tipo_imovel"`
}

// PaymentsByPropertyItemResponse represents one property in the totals list.
type PaymentsByPropertyItemResponse struct {
	PropertyCode        int     `json:"codigo_imovel"`
	PropertyDescription string  `json:"descricao_imovel"`
	PropertyType        string  `json:"tipo_imovel"`
	TotalPayments       float64 `json:"total_pagamentos"`
}

// SalesByMonthItemResponse represents one month in the sales series.
type SalesByMonthItemResponse struct {
	Month string  `json:"mes"`
	Total float64 `json:"total"`
	Count int     `json:"quantidade"`
}

// SalesByMonthResponse represents the response of the sales-by-month endpoint.
type SalesByMonthResponse struct {
	Series []SalesByMonthItemResponse `json:"series"`
}

// SalesShareItemResponse represents one property type in the share breakdown.
type SalesShareItemResponse struct {
	PropertyType string  `json:"tipo_imovel"`
	Percentage   float64 `json:"percentual"`
	Count        int     `json:"quantidade"`
}

// SalesShareByTypeResponse represents the response of the share-by-type endpoint.
type SalesShareByTypeResponse struct {
	Share []SalesShareItemResponse `json:"share"`
	Total int                      `json:"total"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ToRawPaymentsResponse converts domain payments to the raw payments DTO list.
func ToRawPaymentsResponse(payments []entity.Payment) []RawPaymentResponse {
	response := make([]RawPaymentResponse, len(payments))
	for i, p := range payments {
		amount, _ := p.Amount.Round(2).Float64()
		response[i] = RawPaymentResponse{
			SaleID:              p.SaleID,
			PaymentDate:         p.PaymentDate.Format("2006-01-02"),
			Amount:              amount,
			PropertyCode:        p.PropertyCode,
			PropertyDescription: p.PropertyDescription,
			PropertyType:        p.PropertyType,
		}
	}
	return response
}

// ToPaymentsByPropertyResponse converts property totals to the response DTO list.
func ToPaymentsByPropertyResponse(totals []analytics.PropertyTotal) []PaymentsByPropertyItemResponse {
	response := make([]PaymentsByPropertyItemResponse, len(totals))
	for i, t := range totals {
		totalPayments, _ := t.TotalPayments.Float64()
		response[i] = PaymentsByPropertyItemResponse{
			PropertyCode:        t.PropertyCode,
			PropertyDescription: t.PropertyDescription,
			PropertyType:        t.PropertyType,
			TotalPayments:       totalPayments,
		}
	}
	return response
}

// ToSalesByMonthResponse converts a SalesByMonthOutput to the response DTO.
func ToSalesByMonthResponse(output *analytics.SalesByMonthOutput) SalesByMonthResponse {
	series := make([]SalesByMonthItemResponse, len(output.Series))
	for i, m := range output.Series {
		total, _ := m.Total.Float64()
		series[i] = SalesByMonthItemResponse{
			Month: m.Month,
			Total: total,
			Count: m.Count,
		}
	}
	return SalesByMonthResponse{Series: series}
}

// ToSalesShareByTypeResponse converts a SalesShareByTypeOutput to the response DTO.
func ToSalesShareByTypeResponse(output *analytics.SalesShareByTypeOutput) SalesShareByTypeResponse {
	share := make([]SalesShareItemResponse, len(output.Share))
	for i, s := range output.Share {
		percentage, _ := s.Percentage.Float64()
		share[i] = SalesShareItemResponse{
			PropertyType: s.PropertyType,
			Percentage:   percentage,
			Count:        s.Count,
		}
	}
	return SalesShareByTypeResponse{
		Share: share,
		Total: output.Total,
	}
}

// EmptyRawPaymentsResponse returns the fail-soft body for the raw endpoint.
func EmptyRawPaymentsResponse() []RawPaymentResponse {
	return []RawPaymentResponse{}
}

// EmptyPaymentsByPropertyResponse returns the fail-soft body for the totals endpoint.
func EmptyPaymentsByPropertyResponse() []PaymentsByPropertyItemResponse {
	return []PaymentsByPropertyItemResponse{}
}

// EmptySalesByMonthResponse returns the fail-soft body for the monthly endpoint.
func EmptySalesByMonthResponse() SalesByMonthResponse {
	return SalesByMonthResponse{Series: []SalesByMonthItemResponse{}}
}

// EmptySalesShareByTypeResponse returns the fail-soft body for the share endpoint.
func EmptySalesShareByTypeResponse() SalesShareByTypeResponse {
	return SalesShareByTypeResponse{Share: []SalesShareItemResponse{}, Total: 0}
}
