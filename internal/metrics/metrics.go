// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics exposes Prometheus collectors for validation and workflow
// activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redgreen_validations_total",
			Help: "Total validation calls by validator kind and outcome",
		},
		[]string{"validator", "outcome"},
	)

	workflowStepsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redgreen_workflow_steps_total",
			Help: "Total workflow steps executed by action",
		},
		[]string{"action"},
	)
)

// Recorder implements validate.Recorder on top of Prometheus counters.
type Recorder struct{}

// RecordValidation counts a validation call.
func (Recorder) RecordValidation(kind, outcome string) {
	validationsTotal.WithLabelValues(kind, outcome).Inc()
}

// RecordStep counts an executed workflow action.
func RecordStep(action string) {
	workflowStepsTotal.WithLabelValues(action).Inc()
}
