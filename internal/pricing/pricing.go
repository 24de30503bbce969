package pricing

// MaxVIPLevel is the hard ceiling of the tier ladder. Requests beyond it are
// rejected before any other validation.
const MaxVIPLevel = 10

// Amounts are LKR.
var (
	vipCosts = map[int]float64{
		1:  2000,
		2:  4000,
		3:  6000,
		4:  8000,
		5:  10000,
		6:  20000,
		7:  40000,
		8:  60000,
		9:  80000,
		10: 100000,
	}

	// commissionRates[level-1] is the commission a referrer earns when a
	// referred user reaches that level, provided the referrer holds that
	// level or above. Referrers below the reached level (but at VIP 1+)
	// earn the level-1 rate instead.
	commissionRates = []float64{
		1000,  // VIP 1
		1000,  // VIP 2
		1500,  // VIP 3
		2000,  // VIP 4
		2500,  // VIP 5
		5000,  // VIP 6
		10000, // VIP 7
		15000, // VIP 8
		20000, // VIP 9
		25000, // VIP 10
	}

	withdrawalFee       = 300.0
	minWithdrawalAmount = 1300.0
)

// VIPCost returns the purchase cost of a level, or 0 for unknown levels.
func VIPCost(level int) float64 {
	return vipCosts[level]
}

// CommissionRate returns the full commission paid when a referred user
// reaches level, or 0 for levels outside [1, MaxVIPLevel].
func CommissionRate(level int) float64 {
	if level < 1 || level > len(commissionRates) {
		return 0
	}
	return commissionRates[level-1]
}

// BaseCommissionRate is the flat rate paid to referrers ranked below the
// reached level. It equals the VIP 1 commission.
func BaseCommissionRate() float64 {
	return commissionRates[0]
}

// WithdrawalFee is the flat fee charged on every withdrawal, fixed at
// submission time.
func WithdrawalFee() float64 {
	return withdrawalFee
}

// MinWithdrawalAmount is the smallest amount a user may withdraw,
// before the fee.
func MinWithdrawalAmount() float64 {
	return minWithdrawalAmount
}

// Overrides carries optional replacements for the built-in tables, sourced
// from configuration. Zero values leave the defaults untouched.
type Overrides struct {
	VIPCosts            map[int]float64
	CommissionRates     []float64
	WithdrawalFee       float64
	MinWithdrawalAmount float64
}

// Apply installs configuration overrides. A commission table must cover all
// ten levels to be accepted; partial cost maps patch individual levels.
func Apply(o Overrides) {
	for level, cost := range o.VIPCosts {
		if level >= 1 && level <= MaxVIPLevel && cost > 0 {
			vipCosts[level] = cost
		}
	}
	if len(o.CommissionRates) == MaxVIPLevel {
		commissionRates = o.CommissionRates
	}
	if o.WithdrawalFee > 0 {
		withdrawalFee = o.WithdrawalFee
	}
	if o.MinWithdrawalAmount > 0 {
		minWithdrawalAmount = o.MinWithdrawalAmount
	}
}
