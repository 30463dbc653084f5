package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBroadcastFile_FirstCreation(t *testing.T) {
	file := &BroadcastFile{
		Transactions: []BroadcastTransaction{
			{TransactionType: "CALL", ContractName: "WrappedPocket", ContractAddress: ""},
			{TransactionType: "CREATE", ContractName: "WrappedPocket", ContractAddress: "0x1111111111111111111111111111111111111111"},
			{TransactionType: "CREATE", ContractName: "MintController", ContractAddress: "0x2222222222222222222222222222222222222222"},
			{TransactionType: "CREATE", ContractName: "WrappedPocket", ContractAddress: "0x3333333333333333333333333333333333333333"},
		},
	}

	addr, ok := file.FirstCreation("WrappedPocket")
	assert.True(t, ok)
	assert.Equal(t, "0x1111111111111111111111111111111111111111", addr)

	addr, ok = file.FirstCreation("MintController")
	assert.True(t, ok)
	assert.Equal(t, "0x2222222222222222222222222222222222222222", addr)

	_, ok = file.FirstCreation("Bridge")
	assert.False(t, ok)
}

func TestBroadcastFile_LastReceipt(t *testing.T) {
	file := &BroadcastFile{}
	_, ok := file.LastReceipt()
	assert.False(t, ok)

	file.Receipts = []BroadcastReceipt{
		{TransactionHash: "0xa", CumulativeGasUsed: "0x1"},
		{TransactionHash: "0xb", CumulativeGasUsed: "0x2"},
	}
	receipt, ok := file.LastReceipt()
	assert.True(t, ok)
	assert.Equal(t, "0xb", receipt.TransactionHash)
}
