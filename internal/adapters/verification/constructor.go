package verification

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var addressArguments = func() abi.Arguments {
	addressType, err := abi.NewType("address", "", nil)
	if err != nil {
		panic(err)
	}
	return abi.Arguments{{Name: "arg", Type: addressType}}
}()

// EncodeAddressArgument ABI encodes a single address constructor argument:
// the address left-padded to 32 bytes, hex encoded with a 0x prefix.
func EncodeAddressArgument(address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("invalid address %q", address)
	}

	packed, err := addressArguments.Pack(common.HexToAddress(address))
	if err != nil {
		return "", err
	}
	return hexutil.Encode(packed), nil
}
