package trip

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	maletaDir = ".maleta"
	tripsDir  = "trips"
)

// HomeDir returns the root of maleta's storage. MALETA_HOME overrides
// the default of ~/.maleta, which tests rely on.
func HomeDir() (string, error) {
	if dir := os.Getenv("MALETA_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, maletaDir), nil
}

// TripsDir returns the directory holding saved trip folders.
func TripsDir() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, tripsDir), nil
}

// ResolveName checks for name collisions among saved trips and returns
// a unique name. If baseName is taken, it appends -2, -3, etc.
func ResolveName(baseName string) (string, error) {
	dir, err := TripsDir()
	if err != nil {
		return "", err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return baseName, nil
		}
		return "", fmt.Errorf("failed to read trips directory: %w", err)
	}

	// Folder format is <id>-<name>, so split on the first hyphen.
	existing := make(map[string]bool)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		parts := strings.SplitN(entry.Name(), "-", 2)
		if len(parts) == 2 {
			existing[parts[1]] = true
		}
	}

	if !existing[baseName] {
		return baseName, nil
	}

	for suffix := 2; ; suffix++ {
		candidate := fmt.Sprintf("%s-%d", baseName, suffix)
		if !existing[candidate] {
			return candidate, nil
		}
	}
}

// Save writes the trip to <trips>/<id>-<name>/trip.json, creating the
// folder structure as needed and bumping LastModified.
func Save(t *Trip) error {
	dir, err := TripsDir()
	if err != nil {
		return err
	}

	folderPath := filepath.Join(dir, fmt.Sprintf("%s-%s", t.ID, t.Name))
	if err := os.MkdirAll(folderPath, 0755); err != nil {
		return fmt.Errorf("failed to create trip folder: %w", err)
	}

	t.LastModified = time.Now()

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal trip: %w", err)
	}

	tripPath := filepath.Join(folderPath, "trip.json")
	if err := os.WriteFile(tripPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write trip.json: %w", err)
	}

	return nil
}

// Load reads a saved trip by ID, name, or full folder name.
func Load(ref string) (*Trip, error) {
	dir, err := TripsDir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("no saved trips found: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		parts := strings.SplitN(name, "-", 2)
		match := name == ref || parts[0] == ref || (len(parts) == 2 && parts[1] == ref)
		if !match {
			continue
		}
		return readTrip(filepath.Join(dir, name, "trip.json"))
	}

	return nil, fmt.Errorf("trip not found: %s", ref)
}

// List returns all saved trips sorted by creation time, newest first.
// Unreadable folders are skipped.
func List() ([]*Trip, error) {
	dir, err := TripsDir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read trips directory: %w", err)
	}

	var trips []*Trip
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		t, err := readTrip(filepath.Join(dir, entry.Name(), "trip.json"))
		if err != nil {
			continue
		}
		trips = append(trips, t)
	}

	sort.Slice(trips, func(i, j int) bool {
		return trips[i].CreatedAt.After(trips[j].CreatedAt)
	})

	return trips, nil
}

// Delete removes a saved trip's folder.
func Delete(ref string) error {
	t, err := Load(ref)
	if err != nil {
		return err
	}

	dir, err := TripsDir()
	if err != nil {
		return err
	}

	folderPath := filepath.Join(dir, fmt.Sprintf("%s-%s", t.ID, t.Name))
	if err := os.RemoveAll(folderPath); err != nil {
		return fmt.Errorf("failed to delete trip folder: %w", err)
	}
	return nil
}

func readTrip(path string) (*Trip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var t Trip
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &t, nil
}
