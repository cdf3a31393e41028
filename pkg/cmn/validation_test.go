package cmn_test

import (
	"testing"

	"github.com/timoha/aistore/pkg/cmn"
)

func TestValidateBucketName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		bucketName string
		wantErr    bool
	}{
		{"ValidBucket", "my-valid-bucket", false},
		{"ValidWithDots", "bucket.v2", false},
		{"ValidWithUnderscore", "train_data", false},
		{"EmptyBucket", "", true},
		{"WhitespaceOnly", "   ", true},
		{"ContainsSlash", "my/bucket", true},
		{"ContainsBackslash", "my\\bucket", true},
		{"ConsecutiveDots", "my..bucket", true},
		{"ContainsSpace", "my bucket", true},
		{"ContainsStar", "bucket*", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := cmn.ValidateBucketName(tt.bucketName)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBucketName(%q) error = %v, wantErr %v", tt.bucketName, err, tt.wantErr)
			}
		})
	}
}

func TestValidateObjectName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		objName string
		wantErr bool
	}{
		{"Simple", "cat.png", false},
		{"Nested", "shards/train/shard-001.tar", false},
		{"Empty", "", true},
		{"LeadingSlash", "/cat.png", true},
		{"DotDot", "a/../b", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := cmn.ValidateObjectName(tt.objName)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateObjectName(%q) error = %v, wantErr %v", tt.objName, err, tt.wantErr)
			}
		})
	}
}

func TestValidateProvider(t *testing.T) {
	t.Parallel()

	for _, p := range append([]string{""}, cmn.Providers...) {
		if err := cmn.ValidateProvider(p); err != nil {
			t.Errorf("ValidateProvider(%q) = %v, want nil", p, err)
		}
	}
	if err := cmn.ValidateProvider("s3"); err == nil {
		t.Error("ValidateProvider(\"s3\") = nil, want error")
	}
}
