// Package surveytest holds survey fixtures shared by package tests.
package surveytest

import (
	"bytes"
	"encoding/csv"

	"github.com/xuri/excelize/v2"

	"payment-insights-go/internal/types"
)

// Header is the question row of the survey export, in column order.
var Header = []string{
	"Timestamp",
	"Username",
	"Which digital payment platforms do you use?",
	"Which one is your primary digital wallet?",
	"How often do you use digital payment apps?",
	"Which platform do you find most reliable?",
	"Which platform handles issues best?",
	"How satisfied are you with your primary wallet?",
	"I am confident my data is protected",
	"Which platform do you trust most for security?",
	"Which platform is most innovative?",
	"How easy is your primary wallet to use?",
	"Which platform adapts quickly to user needs?",
	"Would you recommend your primary wallet?",
	"Would you prefer PayPal if it were available?",
	"Why would you prefer PayPal?",
	"Why would you not switch?",
	"Which PayPal features should local wallets adopt?",
	"Should local wallets adopt PayPal practices?",
}

// Cells flattens a response into its positional cells.
func Cells(r types.Response) []string {
	out := make([]string, types.FieldCount)
	for _, f := range types.Fields() {
		out[f] = r.Value(f)
	}
	return out
}

// CSV renders rows as a survey export.
func CSV(rows []types.Response) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(Header)
	for _, r := range rows {
		_ = w.Write(Cells(r))
	}
	w.Flush()
	return buf.Bytes()
}

// XLSX renders rows as a single-sheet workbook.
func XLSX(rows []types.Response) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &Header); err != nil {
		return nil, err
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		cells := Cells(r)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, err
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Sample is a small, realistic response set.
func Sample() []types.Response {
	return []types.Response{
		{
			Timestamp: "2024/05/01 10:00:00", Username: "a@example.com",
			PlatformsUsed: "Easypaisa;JazzCash", PrimaryWallet: "Easypaisa",
			UsageFrequency: "Daily", Satisfaction: "Very satisfied",
			DataProtectionConfidence: "Agree", MostTrustedSecurity: "Easypaisa",
			EaseOfUse: "Very easy to use", WouldRecommend: "Yes", PreferPayPal: "Yes",
			PayPalReason: "Global acceptance", PayPalFeaturesToAdopt: "Buyer protection;International transfers",
		},
		{
			Timestamp: "2024/05/01 10:05:00", Username: "b@example.com",
			PlatformsUsed: "JazzCash", PrimaryWallet: "JazzCash",
			UsageFrequency: "Daily", Satisfaction: "Satisfied",
			DataProtectionConfidence: "Neutral", MostTrustedSecurity: "JazzCash",
			EaseOfUse: "Easy to use", WouldRecommend: "Yes", PreferPayPal: "Maybe",
			PayPalFeaturesToAdopt: "Buyer protection",
		},
		{
			Timestamp: "2024/05/01 10:10:00", Username: "c@example.com",
			PlatformsUsed: "NayaPay;Other digital wallet", PrimaryWallet: "NayaPay",
			UsageFrequency: "Rarely", Satisfaction: "Neutral",
			DataProtectionConfidence: "Disagree", MostTrustedSecurity: "None",
			EaseOfUse: "Average", WouldRecommend: "No", PreferPayPal: "No",
		},
		{
			Timestamp: "2024/05/01 10:15:00", Username: "d@example.com",
			PlatformsUsed: "Easypaisa;SadaPay", PrimaryWallet: "Easypaisa Wallet",
			UsageFrequency: "Occasionally", Satisfaction: "Dissatisfied",
			DataProtectionConfidence: "Strongly disagree", MostTrustedSecurity: "Easypaisa",
			EaseOfUse: "Difficult to use", WouldRecommend: "Maybe", PreferPayPal: "Yes",
			PayPalReason: "Global acceptance", PayPalFeaturesToAdopt: "Dispute resolution",
		},
		{
			Timestamp: "2024/05/01 10:20:00", Username: "e@example.com",
			PlatformsUsed: "JazzCash;Easypaisa", PrimaryWallet: "JazzCash App",
			UsageFrequency: "Several times a week", Satisfaction: "Satisfied",
			DataProtectionConfidence: "Strongly agree", MostTrustedSecurity: "JazzCash",
			EaseOfUse: "Easy to use", WouldRecommend: "Yes", PreferPayPal: "Yes",
			PayPalReason: "Better security", PayPalFeaturesToAdopt: "Buyer protection;Dispute resolution",
		},
	}
}
