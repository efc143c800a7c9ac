package models

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"
)

type Project struct {
	BaseModel
	UserID      string         `gorm:"type:varchar(36);not null;index"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	ImageURL    string         `gorm:"column:image_url;type:text"`
	Link        string         `gorm:"type:text"`
	Tags        datatypes.JSON
}

// TagList - единственная точка нормализации тегов.
// Колонка исторически хранила и JSON-массив, и JSON-строку с массивом внутри;
// все, что не разбирается в список строк, превращается в пустой список.
func (p *Project) TagList() []string {
	return ParseTags(p.Tags)
}

// SetTags всегда пишет JSON-массив
func (p *Project) SetTags(tags []string) {
	p.Tags = EncodeTags(tags)
}

func ParseTags(raw []byte) []string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return []string{}
	}

	var tags []string
	if err := json.Unmarshal([]byte(trimmed), &tags); err == nil {
		return compactTags(tags)
	}

	// Массив, сериализованный второй раз: "[\"go\",\"sql\"]"
	var nested string
	if err := json.Unmarshal([]byte(trimmed), &nested); err == nil {
		if err := json.Unmarshal([]byte(nested), &tags); err == nil {
			return compactTags(tags)
		}
	}

	return []string{}
}

func EncodeTags(tags []string) datatypes.JSON {
	b, err := json.Marshal(compactTags(tags))
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

func compactTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
