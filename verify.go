package main

import (
	"encoding/hex"
	"fmt"

	"KZGBlobCommitment/modules/kzg"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/spf13/cobra"
)

var (
	verifyCommitment string
	verifyProof      string
	verifyPoint      string
	verifyValue      string
)

func init() {
	blobkzgCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVar(&verifyCommitment, "commitment", "", "Hex-encoded compressed commitment point.")
	verifyCmd.Flags().StringVar(&verifyProof, "proof", "", "Hex-encoded compressed opening proof point.")
	verifyCmd.Flags().StringVar(&verifyPoint, "point", "", "Evaluation point, a decimal or 0x-prefixed field element.")
	verifyCmd.Flags().StringVar(&verifyValue, "value", "", "Claimed evaluation, a decimal or 0x-prefixed field element.")
	verifyCmd.MarkFlagRequired("commitment")
	verifyCmd.MarkFlagRequired("proof")
	verifyCmd.MarkFlagRequired("point")
	verifyCmd.MarkFlagRequired("value")
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check an opening proof against a commitment, point and value",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		VerifyImpl()
	},
}

func VerifyImpl() {
	commitment := parseG1Point(verifyCommitment)
	proof := kzg.Proof{QuotientCommitment: parseG1Point(verifyProof)}
	point := parseFieldElement(verifyPoint)
	value := parseFieldElement(verifyValue)

	scheme := kzg.NewScheme(loadSRS())
	ok, err := scheme.Verify(&commitment, point, value, &proof)
	if err != nil {
		panic(err.Error())
	}

	fmt.Println("verified:", ok)
}

func parseG1Point(s string) bn254.G1Affine {
	raw, err := hex.DecodeString(s)
	if err != nil {
		panic(err.Error())
	}

	var p bn254.G1Affine
	if _, err := p.SetBytes(raw); err != nil {
		panic(err.Error())
	}
	return p
}
