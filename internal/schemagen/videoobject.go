// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package schemagen

import "github.com/robcelta/schemactl/internal/formdata"

func init() {
	Register(videoObject{})
}

type videoObject struct{}

func (videoObject) Type() string { return "VideoObject" }

func (videoObject) Build(v formdata.Values) *Document {
	doc := NewJSONLD("VideoObject")
	doc.Set("name", v.String("name"))
	doc.Set("description", v.String("description"))
	doc.Set("thumbnailUrl", v.String("thumbnailUrl"))
	doc.Set("uploadDate", v.String("uploadDate"))
	doc.SetNonEmpty("duration", v.String("duration"))
	doc.SetNonEmpty("contentUrl", v.String("contentUrl"))
	doc.SetNonEmpty("embedUrl", v.String("embedUrl"))
	if author := v.String("author"); author != "" {
		doc.Set("author", person(author))
	}
	if publisher := v.String("publisher"); publisher != "" {
		doc.Set("publisher", organization(publisher))
	}
	return doc
}
