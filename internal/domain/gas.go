package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
)

// Display unit scales
const (
	GweiDecimals  = 9
	EtherDecimals = 18
)

// GasSummary holds the gas figures of the final receipt of a run
type GasSummary struct {
	BlockNumber *uint256.Int
	GasUsed     *uint256.Int
	GasPrice    *uint256.Int
	TotalCost   *uint256.Int
}

// NewGasSummary parses the hex encoded receipt fields and computes the total
// cost in wei.
func NewGasSummary(blockNumber, cumulativeGasUsed, effectiveGasPrice string) (*GasSummary, error) {
	block, err := ParseHexQuantity(blockNumber)
	if err != nil {
		return nil, fmt.Errorf("blockNumber: %w", err)
	}
	used, err := ParseHexQuantity(cumulativeGasUsed)
	if err != nil {
		return nil, fmt.Errorf("cumulativeGasUsed: %w", err)
	}
	price, err := ParseHexQuantity(effectiveGasPrice)
	if err != nil {
		return nil, fmt.Errorf("effectiveGasPrice: %w", err)
	}

	cost, overflow := new(uint256.Int).MulOverflow(used, price)
	if overflow {
		return nil, fmt.Errorf("total gas cost overflows 256 bits (%s * %s)", used.Dec(), price.Dec())
	}

	return &GasSummary{
		BlockNumber: block,
		GasUsed:     used,
		GasPrice:    price,
		TotalCost:   cost,
	}, nil
}

// BlockNumberString is the block number in decimal
func (g *GasSummary) BlockNumberString() string {
	return g.BlockNumber.Dec()
}

// GasUsedString renders e.g. "21000 gas"
func (g *GasSummary) GasUsedString() string {
	return g.GasUsed.Dec() + " gas"
}

// GasPriceString renders e.g. "1 gwei"
func (g *GasSummary) GasPriceString() string {
	return FormatUnits(g.GasPrice, GweiDecimals) + " gwei"
}

// TotalCostString renders e.g. "0.000021 ETH"
func (g *GasSummary) TotalCostString() string {
	return FormatUnits(g.TotalCost, EtherDecimals) + " ETH"
}

// ParseHexQuantity parses a 0x-prefixed hex quantity of up to 256 bits.
// Leading zeros are accepted.
func ParseHexQuantity(s string) (*uint256.Int, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, fmt.Errorf("invalid hex quantity %q: missing 0x prefix", s)
	}
	v, ok := math.ParseBig256(s)
	if !ok {
		return nil, fmt.Errorf("invalid hex quantity %q", s)
	}
	return uint256.MustFromBig(v), nil
}

// FormatUnits renders v / 10^decimals as an exact decimal with trailing
// zeros removed.
func FormatUnits(v *uint256.Int, decimals int) string {
	if decimals == 0 {
		return v.Dec()
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(v.ToBig(), scale, new(big.Int))
	if frac.Sign() == 0 {
		return whole.String()
	}
	fracStr := frac.String()
	fracStr = strings.Repeat("0", decimals-len(fracStr)) + fracStr
	return whole.String() + "." + strings.TrimRight(fracStr, "0")
}
