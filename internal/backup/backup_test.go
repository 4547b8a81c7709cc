package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func writeStore(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write store file: %v", err)
	}
	return path
}

func TestCreateAndListBackups(t *testing.T) {
	dir := t.TempDir()
	store := writeStore(t, dir, "prepsheet.json", `{"version":1}`)

	mgr := NewManager(store)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != `{"version":1}` {
		t.Errorf("backup content mismatch: %s", data)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("expected 1 backup, got %d", len(backups))
	}
}

func TestCreateBackup_MissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected an error backing up a missing store")
	}
}

func TestRestoreBackup(t *testing.T) {
	dir := t.TempDir()
	store := writeStore(t, dir, "prepsheet.json", `{"version":1,"plans":{}}`)

	mgr := NewManager(store)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Clobber the store, then restore.
	if err := os.WriteFile(store, []byte("corrupted"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	data, _ := os.ReadFile(store)
	if string(data) != `{"version":1,"plans":{}}` {
		t.Errorf("restore did not recover original content: %s", data)
	}
}

func TestListBackups_EmptyDir(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "prepsheet.json"))
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}
