package generator

import "time"

// Preferences are the raw form fields; they enter the brief verbatim.
type Preferences struct {
	Name           string `json:"name" yaml:"name"`
	OneLiner       string `json:"one_liner" yaml:"one_liner"`
	Stage          string `json:"stage" yaml:"stage"`
	PitchLength    string `json:"pitch_length" yaml:"pitch_length"`
	Problem        string `json:"problem" yaml:"problem"`
	Solution       string `json:"solution" yaml:"solution"`
	TargetMarket   string `json:"target_market" yaml:"target_market"`
	Differentiator string `json:"differentiator" yaml:"differentiator"`
	BusinessModel  string `json:"business_model" yaml:"business_model"`
	PitchPurpose   string `json:"pitch_purpose" yaml:"pitch_purpose"`
}

// Stages lists the startup stage options offered by the form.
var Stages = []string{"Idea only", "MVP built", "Beta launch", "Revenue-generating", "Funded"}

// Purposes lists the pitch purpose options offered by the form.
var Purposes = []string{"Investor deck", "Demo Day", "Elevator pitch", "Grant application", "Team onboarding"}

// Credentials are the per-session API keys for the two upstream capabilities.
type Credentials struct {
	OpenAIKey  string `json:"openai_api_key,omitempty"`
	SerpAPIKey string `json:"serp_api_key,omitempty"`
}

// Pitch is the outcome of one generate action. Slides are not stored; they
// are parsed from Document whenever the pitch is rendered.
type Pitch struct {
	Preferences Preferences `json:"preferences"`
	Length      PitchLength `json:"length"`
	Brief       string      `json:"brief"`
	Query       string      `json:"query,omitempty"`
	Research    string      `json:"research"`
	Document    string      `json:"document"`
	Warnings    []string    `json:"warnings,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}
