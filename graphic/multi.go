package graphic

type multiDriver []Driver

// MultiDriver returns a driver which duplicates its calls
// to all the given drivers, in order, similar to io.MultiWriter.
// Group brackets are only sent to the drivers implementing GroupDriver.
func MultiDriver(drivers ...Driver) GroupDriver {
	all := make(multiDriver, 0, len(drivers))
	for _, d := range drivers {
		if m, ok := d.(multiDriver); ok {
			all = append(all, m...)
		} else {
			all = append(all, d)
		}
	}
	return all
}

func (m multiDriver) Trace(child Graphic) {
	for _, d := range m {
		d.Trace(child)
	}
}

func (m multiDriver) Dot(p Position) {
	for _, d := range m {
		d.Dot(p)
	}
}

func (m multiDriver) Circle(center Position, radius float64) {
	for _, d := range m {
		d.Circle(center, radius)
	}
}

func (m multiDriver) BeginGroup(c *Compound) {
	for _, d := range m {
		if gd, ok := d.(GroupDriver); ok {
			gd.BeginGroup(c)
		}
	}
}

func (m multiDriver) EndGroup(c *Compound) {
	for _, d := range m {
		if gd, ok := d.(GroupDriver); ok {
			gd.EndGroup(c)
		}
	}
}
