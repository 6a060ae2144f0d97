package entity

// StoreSettings is the singleton store address record.
type StoreSettings struct {
	Address    string
	PostalCode string
	Number     string
}

// StoreSettingsPatch carries the fields of a partial settings update. Nil means unchanged.
type StoreSettingsPatch struct {
	Address    *string
	PostalCode *string
	Number     *string
}

// Merge applies the non-nil patch fields on top of s.
func (s StoreSettings) Merge(patch StoreSettingsPatch) StoreSettings {
	if patch.Address != nil {
		s.Address = *patch.Address
	}
	if patch.PostalCode != nil {
		s.PostalCode = *patch.PostalCode
	}
	if patch.Number != nil {
		s.Number = *patch.Number
	}

	return s
}
