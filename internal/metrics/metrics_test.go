// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/courses", "200"))
	RecordAPIRequest("GET", "/api/v1/courses", "200", 5*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/courses", "200"))

	if after != before+1 {
		t.Errorf("request counter = %v, want %v", after, before+1)
	}
}

func TestRecordRecommendations(t *testing.T) {
	before := testutil.ToFloat64(RecommendationsGenerated.WithLabelValues("beginner"))
	RecordRecommendations("beginner", []int{45, 60, 72})
	after := testutil.ToFloat64(RecommendationsGenerated.WithLabelValues("beginner"))

	if after != before+3 {
		t.Errorf("recommendations counter = %v, want %v", after, before+3)
	}
}

func TestRecordProfileRejection(t *testing.T) {
	before := testutil.ToFloat64(ProfileRejections)
	RecordProfileRejection()
	after := testutil.ToFloat64(ProfileRejections)

	if after != before+1 {
		t.Errorf("rejection counter = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	done := TrackActiveRequest()
	during := testutil.ToFloat64(APIActiveRequests)
	if during != before+1 {
		t.Errorf("active gauge during request = %v, want %v", during, before+1)
	}

	done()
	after := testutil.ToFloat64(APIActiveRequests)
	if after != before {
		t.Errorf("active gauge after request = %v, want %v", after, before)
	}
}
