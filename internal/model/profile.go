package model

// WorkingRelationships describes how a style works with each of the four quadrants
type WorkingRelationships struct {
	Intuitives  string `json:"intuitives"`
	Conceptuals string `json:"conceptuals"`
	Pragmatists string `json:"pragmatists"`
	Deductives  string `json:"deductives"`
}

// StyleProfile is the descriptive text resolved for a classification.
type StyleProfile struct {
	StyleDescription                 string               `json:"style_description"`
	PreferenceDescription            string               `json:"preference_description"`
	ApplicationPreferenceDescription string               `json:"application_preference_description"`
	WorkingRelationships             WorkingRelationships `json:"working_relationships"`
	Strengths                        []string             `json:"strengths"`
	Weaknesses                       []string             `json:"weaknesses"`
}

// EmptyProfile is the well-formed profile returned when the matrix has no entry.
// Slices are non-nil so they encode as [] rather than null.
func EmptyProfile() StyleProfile {
	return StyleProfile{
		Strengths:  []string{},
		Weaknesses: []string{},
	}
}

// Result is the payload of GET /api/results/{id} and of the admin simulator
type Result struct {
	Scores          DimensionScore `json:"scores"`
	Labels          Labels         `json:"labels"`
	DetailedProfile StyleProfile   `json:"detailed_profile"`
	PlotURL         *string        `json:"plot_url"`
}
