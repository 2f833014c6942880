// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package validate

import "github.com/robcelta/schemactl/internal/formdata"

func init() {
	Register(videoObject{})
}

type videoObject struct{}

func (videoObject) Type() string { return "VideoObject" }

func (videoObject) Check(v formdata.Values) Result {
	var r report
	r.required(v, "name", "Video title is required")
	r.required(v, "description", "Video description is required")
	r.required(v, "thumbnailUrl", "Thumbnail image URL is required")
	r.required(v, "uploadDate", "Upload date is required")

	if thumb := v.String("thumbnailUrl"); thumb != "" && !IsURL(thumb) {
		r.err("Thumbnail URL must be a valid URL")
	}
	if cu := v.String("contentUrl"); cu != "" && !IsURL(cu) {
		r.warn("Video file URL should be a valid URL")
	}
	if eu := v.String("embedUrl"); eu != "" && !IsURL(eu) {
		r.warn("Embed URL should be a valid URL")
	}
	if d := v.String("duration"); d != "" && !durationHMS.MatchString(d) {
		r.warn("Duration should use ISO 8601 format (e.g., PT5M30S for 5 minutes 30 seconds)")
	}
	if v.String("contentUrl") == "" && v.String("embedUrl") == "" {
		r.warn("Adding either a video file URL or embed URL improves discoverability")
	}
	return r.result()
}
