package pkpass

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"

	"github.com/smallstep/pkcs7"
	"github.com/youmark/pkcs8"
)

// signManifest produces a detached, DER-encoded PKCS#7 signature over the
// exact manifest bytes. The signature uses the issuer certificate and key
// with a SHA-256 digest and embeds the intermediate certificate so
// verifiers can assemble the trust chain. Key material lives only for the
// duration of this call.
func signManifest(manifest, certificatePEM, keyPEM, chainCertificatePEM []byte, passphrase string) ([]byte, error) {
	certificate, err := parseCertificate("issuer certificate", certificatePEM)
	if err != nil {
		return nil, err
	}

	chainCertificate, err := parseCertificate("chain certificate", chainCertificatePEM)
	if err != nil {
		return nil, err
	}

	key, err := parsePrivateKey(keyPEM, passphrase)
	if err != nil {
		return nil, err
	}

	if !keyMatchesCertificate(certificate, key) {
		return nil, &CredentialError{Reason: "private key does not match the issuer certificate"}
	}

	signedData, err := pkcs7.NewSignedData(manifest)
	if err != nil {
		return nil, &CredentialError{Reason: "initialize signature", Err: err}
	}

	signedData.SetDigestAlgorithm(pkcs7.OIDDigestAlgorithmSHA256)

	if err = signedData.AddSigner(certificate, key, pkcs7.SignerInfoConfig{}); err != nil {
		return nil, &CredentialError{Reason: "sign manifest", Err: err}
	}

	signedData.AddCertificate(chainCertificate)
	signedData.Detach()

	signature, err := signedData.Finish()
	if err != nil {
		return nil, &CredentialError{Reason: "encode signature", Err: err}
	}

	return signature, nil
}

// parseCertificate decodes one PEM-encoded X.509 certificate.
func parseCertificate(what string, contents []byte) (*x509.Certificate, error) {
	block, _ := pem.Decode(contents)
	if block == nil {
		return nil, &CredentialError{Reason: what + ": no PEM block found"}
	}

	certificate, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, &CredentialError{Reason: what + ": parse certificate", Err: err}
	}

	return certificate, nil
}

// parsePrivateKey decodes a PEM-encoded private key, decrypting it with
// the passphrase when the material is protected.
func parsePrivateKey(contents []byte, passphrase string) (crypto.Signer, error) {
	block, _ := pem.Decode(contents)
	if block == nil {
		return nil, &CredentialError{Reason: "private key: no PEM block found"}
	}

	switch block.Type {
	case "ENCRYPTED PRIVATE KEY":
		if passphrase == "" {
			return nil, &CredentialError{Reason: "private key is encrypted but no passphrase was supplied"}
		}

		key, err := pkcs8.ParsePKCS8PrivateKey(block.Bytes, []byte(passphrase))
		if err != nil {
			return nil, &CredentialError{Reason: "decrypt private key", Err: err}
		}

		return asSigner(key)

	case "PRIVATE KEY":
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, &CredentialError{Reason: "parse private key", Err: err}
		}

		return asSigner(key)

	case "RSA PRIVATE KEY":
		der := block.Bytes

		//nolint:staticcheck // Legacy DEK-Info encrypted PEM still circulates among issuers.
		if x509.IsEncryptedPEMBlock(block) {
			if passphrase == "" {
				return nil, &CredentialError{Reason: "private key is encrypted but no passphrase was supplied"}
			}

			var err error

			//nolint:staticcheck // See above.
			if der, err = x509.DecryptPEMBlock(block, []byte(passphrase)); err != nil {
				return nil, &CredentialError{Reason: "decrypt private key", Err: err}
			}
		}

		key, err := x509.ParsePKCS1PrivateKey(der)
		if err != nil {
			return nil, &CredentialError{Reason: "parse private key", Err: err}
		}

		return key, nil

	case "EC PRIVATE KEY":
		key, err := x509.ParseECPrivateKey(block.Bytes)
		if err != nil {
			return nil, &CredentialError{Reason: "parse private key", Err: err}
		}

		return key, nil
	}

	return nil, &CredentialError{Reason: "private key: unsupported PEM block type " + block.Type}
}

// asSigner narrows a parsed key to crypto.Signer.
func asSigner(key any) (crypto.Signer, error) {
	signer, ok := key.(crypto.Signer)
	if !ok {
		return nil, &CredentialError{Reason: "private key cannot produce signatures"}
	}

	return signer, nil
}

// keyMatchesCertificate reports whether the key's public half equals the
// certificate's public key.
func keyMatchesCertificate(certificate *x509.Certificate, key crypto.Signer) bool {
	type equaler interface {
		Equal(crypto.PublicKey) bool
	}

	public, ok := certificate.PublicKey.(equaler)

	return ok && public.Equal(key.Public())
}
