package types

func cloneReference(r Reference) Reference {
	if r == nil {
		return nil
	}
	return r.cloneReference()
}
