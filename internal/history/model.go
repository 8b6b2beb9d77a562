package history

import "gorm.io/plugin/soft_delete"

// Run is one recorded program execution.
type Run struct {
	ID int64 `json:"id" gorm:"primaryKey"`
	// where the source came from: a file path, a sample name, "repl" or "playground"
	Origin string `json:"origin" gorm:"index:idx_origin"`
	// blake3 of the source text
	Digest string `json:"digest" gorm:"index:idx_digest"`
	Source string `json:"source"`
	Output string `json:"output"`
	// empty when the run succeeded
	Error      string `json:"error"`
	DurationMs int64  `json:"duration_ms"`
	CreatedAt  int64  `json:"created_at" gorm:"index:idx_created_at"`
	/* 0 false 1 true */
	Deleted soft_delete.DeletedAt `json:"-" gorm:"softDelete:flag;default:0"`
}

func (Run) TableName() string {
	return "run"
}

func (r *Run) Failed() bool {
	return r.Error != ""
}
