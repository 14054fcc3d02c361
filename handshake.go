package reql

import (
	"bufio"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// handshakeMagic identifies protocol version V1_0; it is the first thing
// written on a fresh connection.
const handshakeMagic uint32 = 0x34c2bdc3

// Handshake messages are JSON documents terminated by a null byte, in
// both directions.

type handshakeRequest struct {
	ProtocolVersion      *int   `json:"protocol_version,omitempty"`
	AuthenticationMethod string `json:"authentication_method,omitempty"`
	Authentication       string `json:"authentication"`
}

type handshakeResponse struct {
	Success            bool   `json:"success"`
	MinProtocolVersion int    `json:"min_protocol_version"`
	MaxProtocolVersion int    `json:"max_protocol_version"`
	ServerVersion      string `json:"server_version"`
	Authentication     string `json:"authentication"`
	Error              string `json:"error"`
	ErrorCode          int    `json:"error_code"`
}

// performHandshake authenticates a fresh connection with
// SCRAM-SHA-256.  The reader must be the same buffered reader later used
// for responses, since the server may pipeline.
func performHandshake(w *bufio.Writer, r *bufio.Reader, user, password string) error {
	auth, err := newScram(user, password)
	if err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, handshakeMagic); err != nil {
		return err
	}
	version := 0
	err = writeHandshakeMessage(w, handshakeRequest{
		ProtocolVersion:      &version,
		AuthenticationMethod: "SCRAM-SHA-256",
		Authentication:       auth.firstMessage(),
	})
	if err != nil {
		return err
	}

	// first reply carries the protocol version range
	hello, err := readHandshakeMessage(r)
	if err != nil {
		return err
	}
	if version < hello.MinProtocolVersion || version > hello.MaxProtocolVersion {
		return fmt.Errorf("reql: server supports protocol versions %d to %d, not %d",
			hello.MinProtocolVersion, hello.MaxProtocolVersion, version)
	}

	challenge, err := readHandshakeMessage(r)
	if err != nil {
		return err
	}
	final, serverSignature, err := auth.finalMessage(challenge.Authentication)
	if err != nil {
		return err
	}
	if err := writeHandshakeMessage(w, handshakeRequest{Authentication: final}); err != nil {
		return err
	}

	done, err := readHandshakeMessage(r)
	if err != nil {
		return err
	}
	fields := scramFields(done.Authentication)
	if fields["v"] != serverSignature {
		return fmt.Errorf("reql: invalid server signature, refusing to talk to an impostor")
	}
	return nil
}

func writeHandshakeMessage(w *bufio.Writer, msg handshakeRequest) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, 0)); err != nil {
		return err
	}
	return w.Flush()
}

func readHandshakeMessage(r *bufio.Reader) (*handshakeResponse, error) {
	data, err := r.ReadBytes(0)
	if err != nil {
		return nil, err
	}
	data = data[:len(data)-1]

	var msg handshakeResponse
	if err := json.Unmarshal(data, &msg); err != nil {
		// authentication failures before the version exchange arrive as a
		// bare error string
		return nil, fmt.Errorf("reql: handshake failed: %s", data)
	}
	if !msg.Success {
		return nil, fmt.Errorf("reql: handshake failed: %s (error %d)", msg.Error, msg.ErrorCode)
	}
	return &msg, nil
}

// scram carries the client state of one SCRAM-SHA-256 exchange (RFC
// 5802, RFC 7677).
type scram struct {
	user     string
	password string
	nonce    string
}

func newScram(user, password string) (*scram, error) {
	raw := make([]byte, 18)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	return &scram{
		user:     user,
		password: password,
		nonce:    base64.StdEncoding.EncodeToString(raw),
	}, nil
}

// firstBare is the client-first-message without the channel-binding
// prefix; the full first message prepends "n,,".
func (s *scram) firstBare() string {
	// "=" and "," in the user name must be escaped
	user := strings.NewReplacer("=", "=3D", ",", "=2C").Replace(s.user)
	return fmt.Sprintf("n=%s,r=%s", user, s.nonce)
}

func (s *scram) firstMessage() string {
	return "n,," + s.firstBare()
}

// finalMessage computes the client proof for the server's challenge and
// returns the client-final-message along with the server signature the
// server must present to prove it also knows the password.
func (s *scram) finalMessage(serverFirst string) (string, string, error) {
	fields := scramFields(serverFirst)

	combined := fields["r"]
	if !strings.HasPrefix(combined, s.nonce) {
		return "", "", fmt.Errorf("reql: invalid server nonce")
	}
	salt, err := base64.StdEncoding.DecodeString(fields["s"])
	if err != nil {
		return "", "", fmt.Errorf("reql: invalid scram salt: %w", err)
	}
	rounds, err := strconv.Atoi(fields["i"])
	if err != nil || rounds <= 0 {
		return "", "", fmt.Errorf("reql: invalid scram iteration count %q", fields["i"])
	}

	withoutProof := "c=biws,r=" + combined
	authMessage := s.firstBare() + "," + serverFirst + "," + withoutProof

	salted := pbkdf2.Key([]byte(s.password), salt, rounds, sha256.Size, sha256.New)
	clientKey := hmacSum(salted, "Client Key")
	storedKey := sha256.Sum256(clientKey)
	clientSignature := hmacSum(storedKey[:], authMessage)

	proof := make([]byte, len(clientKey))
	for i := range proof {
		proof[i] = clientKey[i] ^ clientSignature[i]
	}

	serverKey := hmacSum(salted, "Server Key")
	serverSignature := hmacSum(serverKey, authMessage)

	final := withoutProof + ",p=" + base64.StdEncoding.EncodeToString(proof)
	return final, base64.StdEncoding.EncodeToString(serverSignature), nil
}

func hmacSum(key []byte, message string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(message))
	return mac.Sum(nil)
}

// scramFields splits "r=...,s=...,i=..." into a map.
func scramFields(message string) map[string]string {
	fields := make(map[string]string)
	for _, part := range strings.Split(message, ",") {
		if k, v, ok := strings.Cut(part, "="); ok {
			fields[k] = v
		}
	}
	return fields
}
