package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestPostRowSchema(t *testing.T) {
	s, err := schema.Parse(&postRow{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	assert.Equal(t, "scheduled_posts", s.Table)

	tests := []struct {
		field   string
		column  string
		has     []string
		missing []string
	}{
		{field: "Seq", column: "seq", has: []string{"PRIMARYKEY", "AUTOINCREMENT"}},
		{field: "PostID", column: "post_id", has: []string{"INDEX"}, missing: []string{"UNIQUEINDEX", "UNIQUE"}},
		{field: "DateKey", column: "date_key", has: []string{"INDEX"}},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f := s.LookUpField(tt.field)
			require.NotNil(t, f)
			assert.Equal(t, tt.column, f.DBName)
			for _, k := range tt.has {
				assert.Contains(t, f.TagSettings, k)
			}
			for _, k := range tt.missing {
				assert.NotContains(t, f.TagSettings, k)
			}
		})
	}
}
