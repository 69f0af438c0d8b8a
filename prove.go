package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"KZGBlobCommitment/modules/blob"
	"KZGBlobCommitment/modules/kzg"
	"KZGBlobCommitment/modules/poly"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/spf13/cobra"
)

var (
	proveBlobFile string
	provePoint    string
)

func init() {
	blobkzgCmd.AddCommand(proveCmd)
	proveCmd.Flags().StringVar(&proveBlobFile, "blob", "", "File holding the raw blob bytes the commitment was made over.")
	proveCmd.Flags().StringVar(&provePoint, "point", "", "Evaluation point, a decimal or 0x-prefixed field element.")
	proveCmd.MarkFlagRequired("blob")
	proveCmd.MarkFlagRequired("point")
}

var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "Open a blob's polynomial at a point and print the value and proof",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ProveImpl()
	},
}

func ProveImpl() {
	data, err := os.ReadFile(proveBlobFile)
	if err != nil {
		panic(err.Error())
	}

	polynomial, err := blob.FromBytesAndPad(data).ToPolynomial(poly.Coefficient)
	if err != nil {
		panic(err.Error())
	}

	point := parseFieldElement(provePoint)

	scheme := kzg.NewScheme(loadSRS())
	value, proof, err := scheme.Open(polynomial, point)
	if err != nil {
		panic(err.Error())
	}

	valueRaw := value.Bytes()
	proofRaw := proof.QuotientCommitment.Bytes()
	fmt.Println("value:", hex.EncodeToString(valueRaw[:]))
	fmt.Println("proof:", hex.EncodeToString(proofRaw[:]))
}

// parseFieldElement parses a decimal or 0x-prefixed scalar field element.
func parseFieldElement(s string) fr.Element {
	var e fr.Element
	if _, err := e.SetString(s); err != nil {
		panic(err.Error())
	}
	return e
}
