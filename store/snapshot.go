package store

import (
	"encoding/json"
	"fmt"
	"time"
)

// SnapshotVersion tags every persisted blob so the schema can change
// without manual invalidation.
const SnapshotVersion = 1

type snapshotEnvelope struct {
	Version int             `json:"version"`
	SavedAt time.Time       `json:"saved_at"`
	Payload json.RawMessage `json:"payload"`
}

func encodeSnapshot(payload interface{}) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(snapshotEnvelope{
		Version: SnapshotVersion,
		SavedAt: time.Now(),
		Payload: raw,
	})
}

// decodeSnapshot unmarshals a persisted blob into payload, migrating by
// version tag. Blobs written before the envelope existed carry no version
// field; they are treated as version 0 and read as a bare payload.
func decodeSnapshot(data []byte, payload interface{}) error {
	var env snapshotEnvelope
	if err := json.Unmarshal(data, &env); err != nil || env.Payload == nil {
		// version 0: bare payload, no envelope
		return json.Unmarshal(data, payload)
	}
	switch env.Version {
	case SnapshotVersion:
		return json.Unmarshal(env.Payload, payload)
	default:
		return fmt.Errorf("unsupported snapshot version %d", env.Version)
	}
}
