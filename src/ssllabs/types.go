// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ssllabs

import (
	"encoding/json"
	"time"
)

// Assessment statuses reported by the service. Other values are possible
// and are treated as not yet started.
const (
	StatusDNS        = "DNS"
	StatusInProgress = "IN_PROGRESS"
	StatusReady      = "READY"
	StatusError      = "ERROR"
)

// Info is the service status returned by the info operation. The counters
// are nil when the body omits them.
type Info struct {
	EngineVersion        string   `json:"engineVersion"`
	CriteriaVersion      string   `json:"criteriaVersion"`
	CurrentAssessments   *int     `json:"currentAssessments,omitempty"`
	MaxAssessments       *int     `json:"maxAssessments,omitempty"`
	NewAssessmentCoolOff *int64   `json:"newAssessmentCoolOff,omitempty"`
	Messages             []string `json:"messages,omitempty"`
}

// Snapshot overlays the counters carried by the info body onto prev.
// Counters the body omits keep their value from prev.
func (i *Info) Snapshot(prev Snapshot) Snapshot {
	if i.CurrentAssessments != nil {
		prev.Current = *i.CurrentAssessments
	}
	if i.MaxAssessments != nil {
		prev.Max = *i.MaxAssessments
	}
	if i.NewAssessmentCoolOff != nil {
		prev.CoolOff = time.Duration(*i.NewAssessmentCoolOff) * time.Millisecond
	}
	return prev
}

// Host is one assessment as reported by analyze. Only Status drives the
// poll loop; Raw keeps the complete document for callers that need fields
// not modeled here.
type Host struct {
	Host            string     `json:"host"`
	Port            int        `json:"port"`
	Protocol        string     `json:"protocol"`
	IsPublic        bool       `json:"isPublic"`
	Status          string     `json:"status"`
	StatusMessage   string     `json:"statusMessage,omitempty"`
	StartTime       int64      `json:"startTime,omitempty"`
	TestTime        int64      `json:"testTime,omitempty"`
	EngineVersion   string     `json:"engineVersion,omitempty"`
	CriteriaVersion string     `json:"criteriaVersion,omitempty"`
	CacheExpiryTime int64      `json:"cacheExpiryTime,omitempty"`
	Endpoints       []Endpoint `json:"endpoints,omitempty"`
	CertHostnames   []string   `json:"certHostnames,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// Terminal reports whether polling is finished. ERROR is a completed
// assessment that failed, not a request failure.
func (h *Host) Terminal() bool {
	return h.Status == StatusReady || h.Status == StatusError
}

// Endpoint is one IP address serving an assessed host.
type Endpoint struct {
	IPAddress            string          `json:"ipAddress"`
	ServerName           string          `json:"serverName,omitempty"`
	StatusMessage        string          `json:"statusMessage,omitempty"`
	StatusDetails        string          `json:"statusDetails,omitempty"`
	StatusDetailsMessage string          `json:"statusDetailsMessage,omitempty"`
	Grade                string          `json:"grade,omitempty"`
	GradeTrustIgnored    string          `json:"gradeTrustIgnored,omitempty"`
	HasWarnings          bool            `json:"hasWarnings"`
	IsExceptional        bool            `json:"isExceptional"`
	Progress             int             `json:"progress"`
	Duration             int64           `json:"duration,omitempty"`
	ETA                  int64           `json:"eta,omitempty"`
	Delegation           int             `json:"delegation,omitempty"`
	Details              json.RawMessage `json:"details,omitempty"`
}

// StatusCodes maps status detail codes to their English descriptions.
type StatusCodes struct {
	StatusDetails map[string]string `json:"statusDetails"`
}
