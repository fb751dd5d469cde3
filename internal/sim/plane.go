package sim

// sellPriceFactor is the fraction of the purchase price recovered on sale.
const sellPriceFactor = 0.7

// Plane is an owned airframe. Location is the short code of the city it is
// parked in; it only changes at week settlement, when the plane ends up at
// the destination of its last flight. Scheduled flights are not stored here:
// they live on the Manager and are selected by registration.
type Plane struct {
	Model        PlaneModel
	Registration string
	Location     string
}

// CanFly reports whether the distance is within the model's range.
func (p *Plane) CanFly(distance float64) bool {
	return distance <= p.Model.Range
}

// SellPrice is what the fleet recovers when the plane is sold.
func (p *Plane) SellPrice() float64 {
	return p.Model.Price * sellPriceFactor
}
