package model

type TransformRequest struct {
	Variant string `json:"variant"  validate:"omitempty,variant"`
	Key     string `json:"key"`
	KeyName string `json:"key_name" validate:"omitempty,keyname"`
	Text    string `json:"text"`
}

type TransformResult struct {
	Variant string `json:"variant"`
	Text    string `json:"text"`
}
