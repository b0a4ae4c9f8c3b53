package item

// sweep applies the two time-driven lifecycle rules: completed active
// items past the archive dwell move to the archive, and trashed items past
// the retention window are purged. Both rules are monotonic and
// idempotent; partition membership is checked before each move, so
// repeated evaluation never double-processes an item.
func (s *Store) sweep() {
	now := s.now()

	kept := s.active[:0]
	for _, it := range s.active {
		if it.Completed && it.CompletedAt != nil && now.Sub(*it.CompletedAt) >= ArchiveDwell {
			it.Archived = true
			s.archived = append(s.archived, it)
			s.dirty[activeKey] = true
			s.dirty[archiveKey] = true
			continue
		}
		kept = append(kept, it)
	}
	s.active = kept

	remaining := s.trashed[:0]
	for _, it := range s.trashed {
		if it.DeletedAt != nil && now.Sub(*it.DeletedAt) >= TrashRetention {
			s.dirty[trashKey] = true
			continue
		}
		remaining = append(remaining, it)
	}
	s.trashed = remaining
}
