// pkg/mqtt/topics.go

package mqtt

import "strings"

// Topic contract with the edge monitors: each vehicle publishes its battery
// health snapshots to car/{vehicleID}/battery/health.
const (
	topicRoot      = "car"
	healthSegments = "battery/health"

	// DefaultHealthTopicFilter subscribes to every vehicle's health stream.
	DefaultHealthTopicFilter = topicRoot + "/+/" + healthSegments
)

// HealthTopic builds the publish topic for one vehicle.
func HealthTopic(vehicleID string) string {
	return topicRoot + "/" + vehicleID + "/" + healthSegments
}

// VehicleFromTopic extracts the vehicle ID from a health topic. Returns
// false for topics outside the contract.
func VehicleFromTopic(topic string) (string, bool) {
	parts := strings.Split(topic, "/")
	if len(parts) != 4 || parts[0] != topicRoot || parts[2]+"/"+parts[3] != healthSegments {
		return "", false
	}

	if parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
