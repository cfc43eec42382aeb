package edit

// ArrayValues returns the source text of each element of the list bound to
// path in src, in order.
func ArrayValues(src, path string) ([]string, error) {
	_, _, b, err := resolve("read", src, path)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, newError("read", path, ErrNoAttr)
	}
	list := findList(b)
	if list == nil {
		return nil, newError("read", path, ErrArray)
	}
	elts := list.Children()
	res := make([]string, 0, len(elts))
	for _, e := range elts {
		res = append(res, e.Text())
	}
	return res, nil
}
