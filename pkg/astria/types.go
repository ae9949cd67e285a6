package astria

import (
	"time"
)

// Tune is a fine-tuned model.
type Tune struct {
	ID        int64      `json:"id"                   yaml:"id"`
	Title     string     `json:"title"                yaml:"title"`
	Name      string     `json:"name"                 yaml:"name"`
	Branch    string     `json:"branch,omitempty"     yaml:"branch,omitempty"`
	ModelType string     `json:"model_type,omitempty" yaml:"model_type,omitempty"`
	Token     string     `json:"token,omitempty"      yaml:"token,omitempty"`
	Steps     *int       `json:"steps,omitempty"      yaml:"steps,omitempty"`
	Images    []string   `json:"orig_images,omitempty" yaml:"orig_images,omitempty"`
	TrainedAt *time.Time `json:"trained_at,omitempty" yaml:"trained_at,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// TuneCreateRequest holds the attributes of a new tune.
type TuneCreateRequest struct {
	Title     string   `json:"title"                yaml:"title"`
	Name      string   `json:"name"                 yaml:"name"`
	Branch    string   `json:"branch,omitempty"     yaml:"branch,omitempty"`
	ModelType string   `json:"model_type,omitempty" yaml:"model_type,omitempty"`
	Token     string   `json:"token,omitempty"      yaml:"token,omitempty"`
	Steps     *int     `json:"steps,omitempty"      yaml:"steps,omitempty"`
	ImageURLs []string `json:"image_urls,omitempty" yaml:"image_urls,omitempty"`
	Callback  string   `json:"callback,omitempty"   yaml:"callback,omitempty"`
}

// Prompt is a generation request attached to a tune.
type Prompt struct {
	ID             int64      `json:"id"                        yaml:"id"`
	TuneID         int64      `json:"tune_id"                   yaml:"tune_id"`
	Name           string     `json:"name"                      yaml:"name"`
	SID            string     `json:"sid"                       yaml:"sid"`
	Description    string     `json:"description"               yaml:"description"`
	Text           string     `json:"text,omitempty"            yaml:"text,omitempty"`
	NegativePrompt string     `json:"negative_prompt,omitempty" yaml:"negative_prompt,omitempty"`
	Images         []string   `json:"images,omitempty"          yaml:"images,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"      yaml:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"      yaml:"updated_at,omitempty"`
}

// PromptCreateRequest holds the attributes of a new prompt.
type PromptCreateRequest struct {
	Name           string `json:"name,omitempty"            yaml:"name,omitempty"`
	SID            string `json:"sid,omitempty"             yaml:"sid,omitempty"`
	Description    string `json:"description,omitempty"     yaml:"description,omitempty"`
	Text           string `json:"text,omitempty"            yaml:"text,omitempty"`
	NegativePrompt string `json:"negative_prompt,omitempty" yaml:"negative_prompt,omitempty"`
	NumImages      int    `json:"num_images,omitempty"      yaml:"num_images,omitempty"`
	Callback       string `json:"callback,omitempty"        yaml:"callback,omitempty"`
}

// PromptUpdateRequest holds the prompt attributes to change. Nil fields are left untouched.
type PromptUpdateRequest struct {
	Name           *string `json:"name,omitempty"            yaml:"name,omitempty"`
	SID            *string `json:"sid,omitempty"             yaml:"sid,omitempty"`
	Description    *string `json:"description,omitempty"     yaml:"description,omitempty"`
	Text           *string `json:"text,omitempty"            yaml:"text,omitempty"`
	NegativePrompt *string `json:"negative_prompt,omitempty" yaml:"negative_prompt,omitempty"`
}

// Account is the authenticated account.
type Account struct {
	ID             int64  `json:"id"              yaml:"id"`
	Email          string `json:"email"           yaml:"email"`
	PlanIdentifier string `json:"plan_identifier" yaml:"plan_identifier"`
}
