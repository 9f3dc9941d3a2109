package llm

import "testing"

func TestProjectSchemaValidate(t *testing.T) {
	schema, err := NewProjectSchema()
	if err != nil {
		t.Fatalf("build schema: %v", err)
	}

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "valid project",
			data: `{"milestones":[{"milestoneLabel":"M1","title":"Design","scope":"Wireframes",
				"tasks":["sketch"],"exclusions":[],"estimatedHours":10,"priceEstimate":500}]}`,
		},
		{
			name: "valid with ballpark",
			data: `{"milestones":[{"milestoneLabel":"M1","title":"t","scope":"s","tasks":[],
				"exclusions":[],"estimatedHours":0,"priceEstimate":0}],
				"totalBallpark":{"hours":10,"price":500}}`,
		},
		{
			name:    "empty milestones rejected",
			data:    `{"milestones":[]}`,
			wantErr: true,
		},
		{
			name:    "missing required field",
			data:    `{"milestones":[{"milestoneLabel":"M1","title":"t","scope":"s","tasks":[],"exclusions":[],"estimatedHours":10}]}`,
			wantErr: true,
		},
		{
			name:    "negative hours rejected",
			data:    `{"milestones":[{"milestoneLabel":"M1","title":"t","scope":"s","tasks":[],"exclusions":[],"estimatedHours":-1,"priceEstimate":0}]}`,
			wantErr: true,
		},
		{
			name:    "string hours rejected",
			data:    `{"milestones":[{"milestoneLabel":"M1","title":"t","scope":"s","tasks":[],"exclusions":[],"estimatedHours":"10","priceEstimate":0}]}`,
			wantErr: true,
		},
		{
			name:    "unknown milestone field rejected",
			data:    `{"milestones":[{"milestoneLabel":"M1","title":"t","scope":"s","tasks":[],"exclusions":[],"estimatedHours":0,"priceEstimate":0,"notes":"x"}]}`,
			wantErr: true,
		},
		{
			name:    "empty label rejected",
			data:    `{"milestones":[{"milestoneLabel":"","title":"t","scope":"s","tasks":[],"exclusions":[],"estimatedHours":0,"priceEstimate":0}]}`,
			wantErr: true,
		},
		{
			name:    "incomplete ballpark rejected",
			data:    `{"milestones":[{"milestoneLabel":"M1","title":"t","scope":"s","tasks":[],"exclusions":[],"estimatedHours":0,"priceEstimate":0}],"totalBallpark":{"hours":10}}`,
			wantErr: true,
		},
		{
			name:    "not json",
			data:    `nope`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.Validate([]byte(tt.data))
			if tt.wantErr && err == nil {
				t.Error("validation passed, want failure")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("validation failed: %v", err)
			}
		})
	}
}

func TestMustProjectSchema(t *testing.T) {
	s := MustProjectSchema()
	if s.Doc() == nil {
		t.Fatal("schema document missing")
	}
	if _, ok := s.Doc()["properties"]; !ok {
		t.Error("schema document lacks properties")
	}
}
