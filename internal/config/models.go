package config

type ModelInfo struct {
	ID          string
	Name        string
	Description string
}

// Models lists the Gemini models offered by the setup view.
var Models = []ModelInfo{
	{
		ID:          "gemini-3-pro-preview",
		Name:        "Gemini 3 Pro",
		Description: "Deliberative, extended reasoning",
	},
	{
		ID:          "gemini-3-flash-preview",
		Name:        "Gemini 3 Flash",
		Description: "Faster, cheaper",
	},
	{
		ID:          "gemini-2.5-pro",
		Name:        "Gemini 2.5 Pro",
		Description: "Previous generation",
	},
}

func GetModel(id string) *ModelInfo {
	for _, m := range Models {
		if m.ID == id {
			return &m
		}
	}
	return nil
}
