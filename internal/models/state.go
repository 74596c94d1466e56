package models

import "strings"

// StateCode identifies the region a workshop is held in.
type StateCode string

// State pairs a code with its display name.
type State struct {
	Code StateCode `json:"code"`
	Name string    `json:"name"`
}

// States is the fixed set of region codes accepted by filters and profiles.
var States = []State{
	{"IN-AP", "Andhra Pradesh"},
	{"IN-AR", "Arunachal Pradesh"},
	{"IN-AS", "Assam"},
	{"IN-BR", "Bihar"},
	{"IN-CT", "Chhattisgarh"},
	{"IN-GA", "Goa"},
	{"IN-GJ", "Gujarat"},
	{"IN-HR", "Haryana"},
	{"IN-HP", "Himachal Pradesh"},
	{"IN-JK", "Jammu and Kashmir"},
	{"IN-JH", "Jharkhand"},
	{"IN-KA", "Karnataka"},
	{"IN-KL", "Kerala"},
	{"IN-MP", "Madhya Pradesh"},
	{"IN-MH", "Maharashtra"},
	{"IN-MN", "Manipur"},
	{"IN-ML", "Meghalaya"},
	{"IN-MZ", "Mizoram"},
	{"IN-NL", "Nagaland"},
	{"IN-OR", "Odisha"},
	{"IN-PB", "Punjab"},
	{"IN-RJ", "Rajasthan"},
	{"IN-SK", "Sikkim"},
	{"IN-TN", "Tamil Nadu"},
	{"IN-TG", "Telangana"},
	{"IN-TR", "Tripura"},
	{"IN-UT", "Uttarakhand"},
	{"IN-UP", "Uttar Pradesh"},
	{"IN-WB", "West Bengal"},
	{"IN-AN", "Andaman and Nicobar Islands"},
	{"IN-CH", "Chandigarh"},
	{"IN-DN", "Dadra and Nagar Haveli"},
	{"IN-DD", "Daman and Diu"},
	{"IN-DL", "Delhi"},
	{"IN-LD", "Lakshadweep"},
	{"IN-PY", "Puducherry"},
}

var stateIndex = func() map[StateCode]string {
	idx := make(map[StateCode]string, len(States))
	for _, s := range States {
		idx[s.Code] = s.Name
	}
	return idx
}()

// ParseStateCode normalises raw and reports whether it names a known state.
func ParseStateCode(raw string) (StateCode, bool) {
	code := StateCode(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := stateIndex[code]
	return code, ok
}

// Name returns the display name, or the code itself when unknown.
func (c StateCode) Name() string {
	if name, ok := stateIndex[c]; ok {
		return name
	}
	return string(c)
}
