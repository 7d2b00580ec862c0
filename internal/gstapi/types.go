package gstapi

// Envelope is the response body of GET /api/gst-returns/{gstin}.
type Envelope struct {
	Success bool     `json:"success"`
	Data    *Summary `json:"data,omitempty"`
	// Source names the upstream data provider, e.g. "gst-portal".
	Source string `json:"source,omitempty"`
	// Demo is set when the API served sample data.
	Demo  bool   `json:"demo,omitempty"`
	Error string `json:"error,omitempty"`
}

// Summary describes one registered taxpayer.
type Summary struct {
	GSTIN             string     `json:"gstin"`
	LegalName         string     `json:"legalName"`
	TradeName         string     `json:"tradeName,omitempty"`
	Status            string     `json:"status,omitempty"`
	RegistrationDate  string     `json:"registrationDate,omitempty"`
	TaxpayerType      string     `json:"taxpayerType,omitempty"`
	StateJurisdiction string     `json:"stateJurisdiction,omitempty"`
	Filings           []Filing   `json:"filings,omitempty"`
	Compliance        Compliance `json:"compliance"`
}

// DisplayName prefers the trade name, which is what people search for.
func (s *Summary) DisplayName() string {
	if s.TradeName != "" {
		return s.TradeName
	}
	return s.LegalName
}

// Filing is one return in the filing history.
type Filing struct {
	ReturnType   string `json:"returnType"`
	Period       string `json:"period"`
	DateOfFiling string `json:"dateOfFiling,omitempty"`
	Status       string `json:"status"`
	ARN          string `json:"arn,omitempty"`
}

// Compliance aggregates the filing history.
type Compliance struct {
	TotalReturns  int     `json:"totalReturns"`
	FiledOnTime   int     `json:"filedOnTime"`
	FiledLate     int     `json:"filedLate"`
	Pending       int     `json:"pending"`
	OnTimePercent float64 `json:"onTimePercent"`
	FiledPercent  float64 `json:"filedPercent"`
}
