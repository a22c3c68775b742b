// Package play holds the immutable play collection loaded from plays.json.
package play

import (
	"fmt"
	"strings"
)

// Source identifies where a play was ingested from.
type Source string

const (
	// SourceEmail is a play extracted from the newsletter emails.
	SourceEmail Source = "email"
	// SourceTwitter is a play fetched from the Twitter/X feed.
	SourceTwitter Source = "twitter"
)

// twitterIDPrefix marks socially-sourced play IDs ("x-<tweet-id>").
const twitterIDPrefix = "x-"

// PlayDetails carries the optional structured fields extracted per play.
type PlayDetails struct {
	DownAndDistance string `json:"down_and_distance,omitempty"`
	Personnel       string `json:"personnel,omitempty"`
	Formation       string `json:"formation,omitempty"`
}

// Play is one video-backed highlight record.
// Field names mirror the plays.json schema written by the ingestion scripts.
type Play struct {
	// PlayNumber is assigned at ingestion for email plays; zero for
	// socially-sourced plays, which carry an "x-" prefixed ID instead.
	PlayNumber int `json:"play_number,omitempty"`
	// ID is the string identity used as the Tag Store key.
	ID string `json:"id,omitempty"`
	// Date is an ISO calendar date (YYYY-MM-DD); may be empty.
	Date  string `json:"date,omitempty"`
	Title string `json:"title,omitempty"`
	// Source is "email" or "twitter"; inferred from the ID prefix when
	// the record doesn't carry it.
	Source Source `json:"source,omitempty"`
	// Angles is the ordered list of camera-angle media URLs.
	Angles []string `json:"angles,omitempty"`
	// Angle1/Angle2 are the legacy two-field shape; Normalize folds them
	// into Angles.
	Angle1      string      `json:"angle1,omitempty"`
	Angle2      string      `json:"angle2,omitempty"`
	PlayDetails PlayDetails `json:"play_details"`
	PlayDiagram string      `json:"play_diagram,omitempty"`
	// Quarter groups plays for display; defaults to 1 when absent.
	Quarter int `json:"quarter,omitempty"`
	// AutoTags are system-derived labels, distinct from user tags.
	AutoTags []string `json:"auto_tags,omitempty"`
	// PlayCaller is the explicit play-caller field, rarely present.
	PlayCaller string `json:"play_caller,omitempty"`
	TwitterURL string `json:"twitter_url,omitempty"`
}

// Normalize fills derived fields on a freshly decoded play: the legacy
// two-field angle shape is coalesced into Angles, the ID is derived from
// PlayNumber when absent, the source is inferred from the ID prefix, and
// Quarter falls back to 1.
func (p *Play) Normalize() {
	if len(p.Angles) == 0 {
		if p.Angle1 != "" {
			p.Angles = append(p.Angles, p.Angle1)
		}
		if p.Angle2 != "" {
			p.Angles = append(p.Angles, p.Angle2)
		}
	}
	p.Angle1 = ""
	p.Angle2 = ""

	if p.ID == "" && p.PlayNumber > 0 {
		p.ID = fmt.Sprintf("%d", p.PlayNumber)
	}

	if p.Source == "" {
		if strings.HasPrefix(p.ID, twitterIDPrefix) {
			p.Source = SourceTwitter
		} else {
			p.Source = SourceEmail
		}
	}

	if p.Quarter < 1 || p.Quarter > 4 {
		p.Quarter = 1
	}
}

// IsPenalty reports whether any auto-tag marks this play as a penalty.
func (p *Play) IsPenalty() bool {
	for _, t := range p.AutoTags {
		if strings.EqualFold(t, "penalty") || strings.HasPrefix(strings.ToLower(t), "penalty:") {
			return true
		}
	}
	return false
}
