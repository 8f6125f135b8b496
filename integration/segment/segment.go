// Package segment implements a segment.io analytics publisher
package segment

import (
	"runtime"

	segment "github.com/segmentio/analytics-go"
	log "github.com/sirupsen/logrus"

	"github.com/rhel2centos/rhel2centos/analytics"
	"github.com/rhel2centos/rhel2centos/version"
)

// WriteKey is the segment.io write key. Telemetry stays disabled unless one
// is baked in at build time via -ldflags.
var WriteKey = ""

// Verbose enables verbose logging in the segment client
var Verbose bool

var ctx = &segment.Context{
	App: segment.AppInfo{
		Name:    "rhel2centos",
		Version: version.Version,
		Build:   version.GitCommit,
	},
	OS: segment.OSInfo{
		Name: runtime.GOOS + " " + runtime.GOARCH,
	},
}

// Client is a segment-backed analytics publisher
type Client struct {
	client    segment.Client
	machineID string
}

// NewClient returns a new segment analytics client
func NewClient() (*Client, error) {
	client, err := segment.NewWithConfig(WriteKey, segment.Config{Verbose: Verbose})
	if err != nil {
		return nil, err
	}
	id, err := analytics.MachineID()
	if err != nil {
		return nil, err
	}
	return &Client{
		client:    client,
		machineID: id,
	}, nil
}

// Publish enqueues a tracking event
func (c Client) Publish(event string, props map[string]interface{}) error {
	log.Debugf("segment event %s - properties: %+v", event, props)
	c.client.Enqueue(segment.Track{
		Context:     ctx,
		AnonymousId: c.machineID,
		Event:       event,
		Properties:  props,
	})
	return nil
}

// Close flushes and closes the underlying client
func (c Client) Close() {
	c.client.Close()
}
