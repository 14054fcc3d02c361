package reql

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The SCRAM-SHA-256 test vector from RFC 7677 section 3.
const (
	scramUser        = "user"
	scramPassword    = "pencil"
	scramClientNonce = "rOprNGfwEbeRWgbNEkqO"
	scramServerFirst = "r=rOprNGfwEbeRWgbNEkqO%hvYDpWUa2RaTCAfuxFIlj)hNlF$k0,s=W22ZaJ0SNY7soEsUEjb6gQ==,i=4096"
	scramClientFinal = "c=biws,r=rOprNGfwEbeRWgbNEkqO%hvYDpWUa2RaTCAfuxFIlj)hNlF$k0,p=dHzbZapWIk4jUhN+Ute9ytag9zjfMHgsqmmiz7AndVQ="
	scramServerSig   = "6rriTRBi23WpRR/wtup+mMhUZUn/dB5nLTJRsjl95G4="
)

func TestScramExchange(t *testing.T) {
	auth := &scram{user: scramUser, password: scramPassword, nonce: scramClientNonce}

	assert.Equal(t, "n,,n=user,r="+scramClientNonce, auth.firstMessage())

	final, serverSignature, err := auth.finalMessage(scramServerFirst)
	require.NoError(t, err)
	assert.Equal(t, scramClientFinal, final)
	assert.Equal(t, scramServerSig, serverSignature)
}

func TestScramUserEscaping(t *testing.T) {
	auth := &scram{user: "sam=,o'neal", nonce: "abc"}
	assert.Equal(t, "n=sam=3D=2Co'neal,r=abc", auth.firstBare())
}

func TestScramRejectsForeignNonce(t *testing.T) {
	auth := &scram{user: scramUser, password: scramPassword, nonce: scramClientNonce}
	_, _, err := auth.finalMessage("r=somebodyelse,s=W22ZaJ0SNY7soEsUEjb6gQ==,i=4096")
	assert.ErrorContains(t, err, "nonce")
}

func TestScramRejectsBadIterationCount(t *testing.T) {
	auth := &scram{user: scramUser, password: scramPassword, nonce: scramClientNonce}
	_, _, err := auth.finalMessage("r=" + scramClientNonce + "x,s=W22ZaJ0SNY7soEsUEjb6gQ==,i=zero")
	assert.ErrorContains(t, err, "iteration count")
}

func TestScramFields(t *testing.T) {
	fields := scramFields("r=abc,s=c2FsdA==,i=4096")
	assert.Equal(t, "abc", fields["r"])
	assert.Equal(t, "c2FsdA==", fields["s"])
	assert.Equal(t, "4096", fields["i"])
}

func TestScramNoncesAreUnique(t *testing.T) {
	a, err := newScram("admin", "")
	require.NoError(t, err)
	b, err := newScram("admin", "")
	require.NoError(t, err)
	assert.NotEqual(t, a.nonce, b.nonce)
	assert.NotEmpty(t, a.nonce)
}

// handshakeServer drives the server half of a V1_0 handshake, using the
// RFC 7677 vector to validate what the client sends.
func handshakeServer(t *testing.T, conn net.Conn) {
	r := bufio.NewReader(conn)

	var magic uint32
	if !assert.NoError(t, binary.Read(r, binary.LittleEndian, &magic)) {
		return
	}
	assert.Equal(t, handshakeMagic, magic)

	first, err := r.ReadBytes(0)
	if !assert.NoError(t, err) {
		return
	}
	var req handshakeRequest
	assert.NoError(t, json.Unmarshal(first[:len(first)-1], &req))
	assert.Equal(t, "SCRAM-SHA-256", req.AuthenticationMethod)

	// recompute the challenge against the client's actual nonce
	fields := scramFields(req.Authentication[len("n,,"):])
	auth := &scram{user: scramUser, password: scramPassword, nonce: fields["r"]}
	serverFirst := "r=" + fields["r"] + "server,s=W22ZaJ0SNY7soEsUEjb6gQ==,i=4096"
	_, wantSignature, err := auth.finalMessage(serverFirst)
	if !assert.NoError(t, err) {
		return
	}

	writeServerMessage := func(v interface{}) {
		data, err := json.Marshal(v)
		assert.NoError(t, err)
		_, err = conn.Write(append(data, 0))
		assert.NoError(t, err)
	}
	writeServerMessage(map[string]interface{}{
		"success": true, "min_protocol_version": 0, "max_protocol_version": 0,
		"server_version": "2.4.0",
	})
	writeServerMessage(map[string]interface{}{
		"success": true, "authentication": serverFirst,
	})

	final, err := r.ReadBytes(0)
	if !assert.NoError(t, err) {
		return
	}
	var finalReq handshakeRequest
	assert.NoError(t, json.Unmarshal(final[:len(final)-1], &finalReq))
	assert.Contains(t, finalReq.Authentication, "p=")

	writeServerMessage(map[string]interface{}{
		"success": true, "authentication": "v=" + wantSignature,
	})
}

func TestHandshake(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		handshakeServer(t, server)
	}()

	err := performHandshake(bufio.NewWriter(client), bufio.NewReader(client), scramUser, scramPassword)
	require.NoError(t, err)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("handshake server did not finish")
	}
}

func TestHandshakeRejectsBadServerSignature(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	go func() {
		r := bufio.NewReader(server)
		var magic uint32
		binary.Read(r, binary.LittleEndian, &magic)
		first, _ := r.ReadBytes(0)
		var req handshakeRequest
		json.Unmarshal(first[:len(first)-1], &req)

		fields := scramFields(req.Authentication[len("n,,"):])
		write := func(v interface{}) {
			data, _ := json.Marshal(v)
			server.Write(append(data, 0))
		}
		write(map[string]interface{}{
			"success": true, "min_protocol_version": 0, "max_protocol_version": 0,
		})
		write(map[string]interface{}{
			"success": true,
			"authentication": "r=" + fields["r"] + "x,s=W22ZaJ0SNY7soEsUEjb6gQ==,i=4096",
		})
		r.ReadBytes(0)
		write(map[string]interface{}{
			"success": true, "authentication": "v=bm90IHRoZSBzaWduYXR1cmU=",
		})
	}()

	err := performHandshake(bufio.NewWriter(client), bufio.NewReader(client), scramUser, scramPassword)
	assert.ErrorContains(t, err, "server signature")
}

func TestHandshakeReportsServerError(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	go func() {
		r := bufio.NewReader(server)
		var magic uint32
		binary.Read(r, binary.LittleEndian, &magic)
		r.ReadBytes(0)
		data, _ := json.Marshal(map[string]interface{}{
			"success": false, "error": "Wrong password", "error_code": 12,
		})
		server.Write(append(data, 0))
	}()

	err := performHandshake(bufio.NewWriter(client), bufio.NewReader(client), "admin", "wrong")
	assert.ErrorContains(t, err, "Wrong password")
}

func TestHandshakeMessageRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	version := 0
	require.NoError(t, writeHandshakeMessage(w, handshakeRequest{
		ProtocolVersion:      &version,
		AuthenticationMethod: "SCRAM-SHA-256",
		Authentication:       "n,,n=admin,r=abc",
	}))
	data := buf.Bytes()
	require.NotEmpty(t, data)
	assert.EqualValues(t, 0, data[len(data)-1], "messages are null-terminated")
	assert.NotContains(t, string(data[:len(data)-1]), "\x00")
}
